package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/application/projection"
	"github.com/alejandrodnm/ratepilot/internal/application/scenario"
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
	"github.com/alejandrodnm/ratepilot/internal/ports"
	"github.com/google/uuid"
)

// Config contiene los parámetros del ciclo de asesoramiento.
type Config struct {
	ScenarioCount int // escenarios what-if por run
	HorizonDays   int // días de la proyección
	ShowDays      int // días de la proyección que se muestran
}

// DefaultConfig devuelve los valores del flujo de referencia.
func DefaultConfig() Config {
	return Config{ScenarioCount: 5, HorizonDays: 365, ShowDays: 10}
}

// Request son los atributos que aporta el usuario. Los datos de mercado
// (reseñas, ubicación, precio competidor) vienen del CompetitorProvider.
type Request struct {
	PropertyName    string
	StrongBrand     bool
	LuxuryAmenities bool
	Demand          domain.DemandPeriod
	LeadTimeDays    int
	Seed            uint64 // semilla usada para el rng, se guarda con el run
}

// Advisor orquesta competidor → tarifa → escenarios → proyección → reporte → archivo.
type Advisor struct {
	cfg         Config
	competitors ports.CompetitorProvider
	engine      *pricing.Engine
	simulator   *scenario.Simulator
	projector   *projection.Projector
	reporter    ports.Reporter
	store       ports.RunStore
}

// New crea un Advisor con todas las dependencias inyectadas.
// reporter y store pueden ser nil.
func New(
	cfg Config,
	competitors ports.CompetitorProvider,
	engine *pricing.Engine,
	simulator *scenario.Simulator,
	projector *projection.Projector,
	reporter ports.Reporter,
	store ports.RunStore,
) *Advisor {
	def := DefaultConfig()
	if cfg.ScenarioCount <= 0 {
		cfg.ScenarioCount = def.ScenarioCount
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = def.HorizonDays
	}
	if cfg.ShowDays < 0 {
		cfg.ShowDays = def.ShowDays
	}
	return &Advisor{
		cfg:         cfg,
		competitors: competitors,
		engine:      engine,
		simulator:   simulator,
		projector:   projector,
		reporter:    reporter,
		store:       store,
	}
}

// Run ejecuta un ciclo completo. Los fallos del proveedor de competidores,
// del reporter y del store no son fatales.
func (a *Advisor) Run(ctx context.Context, req Request, rng pricing.Random) (domain.Run, error) {
	if rng == nil {
		return domain.Run{}, fmt.Errorf("advisor.Run: nil random source")
	}
	start := time.Now()

	snap := a.resolveCompetitor(ctx, req.PropertyName)
	pc := snap.Apply(domain.PricingContext{
		PropertyName:    req.PropertyName,
		StrongBrand:     req.StrongBrand,
		LuxuryAmenities: req.LuxuryAmenities,
		Demand:          req.Demand,
		LeadTimeDays:    req.LeadTimeDays,
	})

	run := domain.Run{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Seed:       req.Seed,
		Context:    pc,
		Competitor: snap,
		Score:      domain.PropertyScore(pc),
	}
	run.Quote = a.engine.Quote(pc, rng)
	run.Scenarios = a.simulator.Run(pc, a.cfg.ScenarioCount, rng)
	run.Projection = a.projector.ProjectYear(a.cfg.HorizonDays, rng)

	if a.reporter != nil {
		if err := a.reporter.ReportRun(ctx, run, a.cfg.ShowDays); err != nil {
			slog.Warn("reporter error", "err", err)
		}
	}

	if a.store != nil {
		if err := a.store.SaveRun(ctx, run); err != nil {
			slog.Warn("storage error", "err", err, "run_id", run.ID)
		}
	}

	slog.Info("advisory run complete",
		"run_id", run.ID,
		"property", pc.PropertyName,
		"price", fmt.Sprintf("%.2f", run.Quote.Final),
		"floor_applied", run.Quote.FloorApplied,
		"competitor_fallback", snap.Fallback,
		"scenarios", len(run.Scenarios.Scenarios),
		"days", run.Projection.Len(),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return run, nil
}

// resolveCompetitor pide los datos al proveedor y degrada al snapshot neutro si falla.
func (a *Advisor) resolveCompetitor(ctx context.Context, name string) domain.CompetitorSnapshot {
	if a.competitors == nil {
		return domain.NeutralSnapshot(name)
	}
	snap, err := a.competitors.FetchCompetitor(ctx, name)
	if err != nil {
		slog.Warn("competitor data unavailable, using neutral fallback",
			"property", name,
			"err", err,
			"review", domain.FallbackReviewScore,
			"competitor_price", domain.FallbackCompetitorPrice,
		)
		return domain.NeutralSnapshot(name)
	}
	slog.Debug("competitor data fetched",
		"name", snap.Name,
		"review", snap.ReviewScore,
		"location", snap.Location.String(),
		"price", snap.Price,
	)
	return snap
}
