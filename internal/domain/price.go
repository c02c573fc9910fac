package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// pricePlaces son los decimales de una tarifa (unidades de moneda por noche).
const pricePlaces = 2

// RoundPrice redondea una tarifa a 2 decimales.
// Usa decimal para evitar artefactos binarios tipo 390.665 → 390.66.
func RoundPrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return p
	}
	return decimal.NewFromFloat(p).Round(pricePlaces).InexactFloat64()
}

// AdjustmentStep es una fila de la traza: el factor aplicado y el precio acumulado tras aplicarlo.
type AdjustmentStep struct {
	Name   string
	Factor float64
	Price  float64
}

// PriceBreakdown es la traza completa de un cálculo de tarifa.
type PriceBreakdown struct {
	BaseRate     float64
	Steps        []AdjustmentStep
	PreFloor     float64 // precio tras la cadena multiplicativa
	FloorApplied bool    // PreFloor < CompetitorPrice
	PreNoise     float64 // precio tras la regla de suelo competitivo
	Noise        float64 // ruido uniforme sumado al final
	Final        float64 // PreNoise + Noise, redondeado a 2 decimales
}

// Step devuelve el paso con el nombre dado, si existe.
func (b PriceBreakdown) Step(name string) (AdjustmentStep, bool) {
	for _, s := range b.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return AdjustmentStep{}, false
}

// PriceStats resume una serie de tarifas.
type PriceStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summarize calcula min/max/media. Devuelve el zero value para una serie vacía.
func Summarize(prices []float64) PriceStats {
	if len(prices) == 0 {
		return PriceStats{}
	}
	st := PriceStats{Count: len(prices), Min: prices[0], Max: prices[0]}
	sum := 0.0
	for _, p := range prices {
		sum += p
		st.Min = math.Min(st.Min, p)
		st.Max = math.Max(st.Max, p)
	}
	st.Mean = RoundPrice(sum / float64(len(prices)))
	return st
}
