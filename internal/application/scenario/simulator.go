package scenario

import (
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
)

// Config define cómo se perturba el contexto base en cada escenario.
type Config struct {
	Count              int     // escenarios por batch si el caller pasa count <= 0
	ReviewJitter       float64 // delta uniforme en [-j, j] sobre la nota
	ReviewMin          float64 // clamp inferior de la nota perturbada
	ReviewMax          float64 // clamp superior de la nota perturbada
	BrandProbability   float64 // P(marca fuerte)
	CentralProbability float64 // P(ubicación central)
	Demand             domain.DemandPeriod
	LuxuryAmenities    bool
	LeadTimeMin        int
	LeadTimeMax        int
	CompetitorMin      float64
	CompetitorMax      float64
	Workers            int // goroutines para RunParallel (0 = NumCPU)
}

// DefaultConfig reproduce el análisis what-if de referencia.
func DefaultConfig() Config {
	return Config{
		Count:              5,
		ReviewJitter:       0.5,
		ReviewMin:          3.0,
		ReviewMax:          5.0,
		BrandProbability:   0.5,
		CentralProbability: 0.5,
		Demand:             domain.DemandHigh,
		LuxuryAmenities:    true,
		LeadTimeMin:        0,
		LeadTimeMax:        120,
		CompetitorMin:      70,
		CompetitorMax:      120,
	}
}

// Simulator genera variantes aleatorias de un contexto y las valora con el Engine.
type Simulator struct {
	cfg    Config
	engine *pricing.Engine
}

// New crea un Simulator. Si cfg.Count <= 0 usa el default.
func New(cfg Config, engine *pricing.Engine) *Simulator {
	if cfg.Count <= 0 {
		cfg.Count = DefaultConfig().Count
	}
	return &Simulator{cfg: cfg, engine: engine}
}

// Run genera count escenarios a partir de seed, en orden de generación.
// Las extracciones siguen siempre el mismo orden (nota, marca, ubicación,
// antelación, competidor, ruido) para que un Random sembrado sea reproducible.
func (s *Simulator) Run(seed domain.PricingContext, count int, rng pricing.Random) domain.ScenarioBatch {
	if count <= 0 {
		count = s.cfg.Count
	}

	batch := domain.ScenarioBatch{
		Seed:      seed,
		Scenarios: make([]domain.Scenario, 0, count),
	}
	for i := 0; i < count; i++ {
		ctx := s.perturb(seed, rng)
		batch.Scenarios = append(batch.Scenarios, domain.Scenario{
			Index:   i,
			Context: ctx,
			Price:   s.engine.Price(ctx, rng),
		})
	}
	return batch
}

// perturb sintetiza un contexto what-if a partir del seed.
// Solo la nota se deriva del seed; el resto se redibuja o se fija.
func (s *Simulator) perturb(seed domain.PricingContext, rng pricing.Random) domain.PricingContext {
	review := clamp(seed.ReviewScore+rng.Uniform(-s.cfg.ReviewJitter, s.cfg.ReviewJitter), s.cfg.ReviewMin, s.cfg.ReviewMax)
	brand := chance(rng, s.cfg.BrandProbability)

	location := domain.LocationPeripheral
	if chance(rng, s.cfg.CentralProbability) {
		location = domain.LocationCentral
	}

	lead := rng.IntInclusive(s.cfg.LeadTimeMin, s.cfg.LeadTimeMax)
	competitor := rng.Uniform(s.cfg.CompetitorMin, s.cfg.CompetitorMax)

	return domain.PricingContext{
		PropertyName:    seed.PropertyName,
		Location:        location,
		ReviewScore:     review,
		StrongBrand:     brand,
		LuxuryAmenities: s.cfg.LuxuryAmenities,
		Demand:          s.cfg.Demand,
		LeadTimeDays:    lead,
		CompetitorPrice: competitor,
	}
}

// chance devuelve true con probabilidad p usando una extracción uniforme.
func chance(rng pricing.Random, p float64) bool {
	return rng.Uniform(0, 1) > 1-p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
