package projection

import (
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
)

// Config define el horizonte, el ciclo estacional y los atributos fijos
// de la propiedad durante la proyección (autopilot).
type Config struct {
	HorizonDays    int // días a proyectar si el caller pasa <= 0
	CycleDays      int // longitud del ciclo estacional
	HighSeasonDays int // primeros N días de cada ciclo en temporada alta

	PropertyName    string
	Location        domain.LocationClass
	ReviewScore     float64
	StrongBrand     bool
	LuxuryAmenities bool

	LeadTimeMin   int
	LeadTimeMax   int
	CompetitorMin float64
	CompetitorMax float64
}

// DefaultConfig reproduce la proyección anual de referencia.
func DefaultConfig() Config {
	return Config{
		HorizonDays:     365,
		CycleDays:       30,
		HighSeasonDays:  10,
		Location:        domain.LocationCentral,
		ReviewScore:     4.2,
		StrongBrand:     true,
		LuxuryAmenities: true,
		LeadTimeMin:     0,
		LeadTimeMax:     120,
		CompetitorMin:   70,
		CompetitorMax:   120,
	}
}

// Projector calcula una tarifa por día a lo largo del horizonte.
type Projector struct {
	cfg    Config
	engine *pricing.Engine
}

// New crea un Projector. Ciclos inválidos toman los valores por defecto.
func New(cfg Config, engine *pricing.Engine) *Projector {
	def := DefaultConfig()
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = def.HorizonDays
	}
	if cfg.CycleDays <= 0 {
		cfg.CycleDays = def.CycleDays
	}
	if cfg.HighSeasonDays < 0 {
		cfg.HighSeasonDays = def.HighSeasonDays
	}
	return &Projector{cfg: cfg, engine: engine}
}

// PeriodForDay devuelve High para los primeros highDays de cada ciclo
// de cycleDays días, y Medium para el resto.
func PeriodForDay(day, cycleDays, highDays int) domain.DemandPeriod {
	if cycleDays <= 0 {
		return domain.DemandMedium
	}
	pos := day % cycleDays
	if pos < 0 {
		pos += cycleDays
	}
	if pos < highDays {
		return domain.DemandHigh
	}
	return domain.DemandMedium
}

// ProjectYear proyecta horizonDays tarifas diarias (365 si horizonDays <= 0).
// Por día extrae antelación y luego precio del competidor, en ese orden.
func (p *Projector) ProjectYear(horizonDays int, rng pricing.Random) domain.SeasonalSeries {
	if horizonDays <= 0 {
		horizonDays = p.cfg.HorizonDays
	}

	series := domain.SeasonalSeries{Days: make([]domain.DailyRate, horizonDays)}
	for day := 0; day < horizonDays; day++ {
		ctx := p.contextForDay(day, rng)
		series.Days[day] = domain.DailyRate{
			Day:    day,
			Demand: ctx.Demand,
			Price:  p.engine.Price(ctx, rng),
		}
	}
	return series
}

func (p *Projector) contextForDay(day int, rng pricing.Random) domain.PricingContext {
	lead := rng.IntInclusive(p.cfg.LeadTimeMin, p.cfg.LeadTimeMax)
	competitor := rng.Uniform(p.cfg.CompetitorMin, p.cfg.CompetitorMax)

	return domain.PricingContext{
		PropertyName:    p.cfg.PropertyName,
		Location:        p.cfg.Location,
		ReviewScore:     p.cfg.ReviewScore,
		StrongBrand:     p.cfg.StrongBrand,
		LuxuryAmenities: p.cfg.LuxuryAmenities,
		Demand:          PeriodForDay(day, p.cfg.CycleDays, p.cfg.HighSeasonDays),
		LeadTimeDays:    lead,
		CompetitorPrice: competitor,
	}
}
