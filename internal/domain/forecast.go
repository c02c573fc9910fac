package domain

// Scenario es una variante "what-if" del contexto base y su tarifa resultante.
type Scenario struct {
	Index   int
	Context PricingContext
	Price   float64
}

// ScenarioBatch conserva el orden de generación de los escenarios.
type ScenarioBatch struct {
	Seed      PricingContext
	Scenarios []Scenario
}

// Prices devuelve las tarifas del batch en orden de generación.
func (b ScenarioBatch) Prices() []float64 {
	out := make([]float64, len(b.Scenarios))
	for i, s := range b.Scenarios {
		out[i] = s.Price
	}
	return out
}

// Stats resume las tarifas del batch.
func (b ScenarioBatch) Stats() PriceStats {
	return Summarize(b.Prices())
}

// DailyRate es la tarifa proyectada para un offset de días desde el inicio.
// No lleva fecha de calendario.
type DailyRate struct {
	Day    int
	Demand DemandPeriod
	Price  float64
}

// SeasonalSeries es la proyección completa, índice = día.
type SeasonalSeries struct {
	Days []DailyRate
}

// Len devuelve el número de días proyectados.
func (s SeasonalSeries) Len() int {
	return len(s.Days)
}

// Prices devuelve las tarifas en orden de día.
func (s SeasonalSeries) Prices() []float64 {
	out := make([]float64, len(s.Days))
	for i, d := range s.Days {
		out[i] = d.Price
	}
	return out
}

// Head devuelve los primeros n días (o todos si hay menos).
func (s SeasonalSeries) Head(n int) []DailyRate {
	if n < 0 {
		n = 0
	}
	if n > len(s.Days) {
		n = len(s.Days)
	}
	return s.Days[:n]
}

// Stats resume la serie completa.
func (s SeasonalSeries) Stats() PriceStats {
	return Summarize(s.Prices())
}

// StatsByDemand agrupa la serie por periodo de demanda.
func (s SeasonalSeries) StatsByDemand() map[DemandPeriod]PriceStats {
	groups := make(map[DemandPeriod][]float64)
	for _, d := range s.Days {
		groups[d.Demand] = append(groups[d.Demand], d.Price)
	}
	out := make(map[DemandPeriod]PriceStats, len(groups))
	for period, prices := range groups {
		out[period] = Summarize(prices)
	}
	return out
}
