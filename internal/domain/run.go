package domain

import "time"

// Run agrupa el resultado de un ciclo completo de asesoramiento:
// tarifa recomendada, escenarios what-if y proyección anual.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Seed       uint64 // semilla del random source (0 = entropía)
	Context    PricingContext
	Competitor CompetitorSnapshot
	Score      int
	Quote      PriceBreakdown
	Scenarios  ScenarioBatch
	Projection SeasonalSeries
}

// RunSummary es la vista ligera de un run archivado.
type RunSummary struct {
	ID              string
	CreatedAt       time.Time
	PropertyName    string
	Seed            uint64
	Score           int
	FinalPrice      float64
	PreNoisePrice   float64
	CompetitorPrice float64
	Fallback        bool
	ScenarioMean    float64
	ProjectionMean  float64
	ProjectionDays  int
}
