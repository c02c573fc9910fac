package domain

import "time"

// Valores neutros cuando no se pudo obtener información del competidor.
const (
	FallbackReviewScore     = 4.0
	FallbackCompetitorPrice = 100.0
)

// CompetitorSnapshot es lo que la capa de adquisición entrega al core:
// (nombre, reseñas, ubicación, precio del competidor).
type CompetitorSnapshot struct {
	Name        string
	ReviewScore float64
	Location    LocationClass
	Price       float64
	Fallback    bool // true si son valores neutros por fallo de extracción
	FetchedAt   time.Time
}

// NeutralSnapshot devuelve el contexto neutro usado cuando la extracción falla.
func NeutralSnapshot(name string) CompetitorSnapshot {
	return CompetitorSnapshot{
		Name:        name,
		ReviewScore: FallbackReviewScore,
		Location:    LocationCentral,
		Price:       FallbackCompetitorPrice,
		Fallback:    true,
		FetchedAt:   time.Now().UTC(),
	}
}

// Apply copia los datos de mercado del snapshot sobre el contexto.
func (s CompetitorSnapshot) Apply(ctx PricingContext) PricingContext {
	if s.Name != "" {
		ctx.PropertyName = s.Name
	}
	ctx.ReviewScore = s.ReviewScore
	ctx.Location = s.Location
	ctx.CompetitorPrice = s.Price
	return ctx
}
