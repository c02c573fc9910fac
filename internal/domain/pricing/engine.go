package pricing

import "github.com/alejandrodnm/ratepilot/internal/domain"

// Config parametriza el motor de tarifas.
type Config struct {
	// BaseRate es la tarifa de partida antes de cualquier ajuste.
	BaseRate float64
	// FloorRatio es la fracción del precio del competidor usada como suelo.
	FloorRatio float64
	// NoiseAmplitude acota el ruido final: se suma Uniform(-a, a).
	NoiseAmplitude float64
}

// DefaultConfig devuelve los parámetros de referencia.
func DefaultConfig() Config {
	return Config{
		BaseRate:       80.0,
		FloorRatio:     0.95,
		NoiseAmplitude: 5.0,
	}
}

// Engine aplica el pipeline de ajustes, el suelo competitivo y el ruido.
// No tiene estado mutable: es seguro compartirlo entre goroutines siempre
// que cada una use su propio Random.
type Engine struct {
	cfg   Config
	steps []Step
}

// NewEngine crea un Engine con el pipeline por defecto.
// BaseRate y FloorRatio <= 0 toman los valores de referencia.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.BaseRate <= 0 {
		cfg.BaseRate = def.BaseRate
	}
	if cfg.FloorRatio <= 0 {
		cfg.FloorRatio = def.FloorRatio
	}
	if cfg.NoiseAmplitude < 0 {
		cfg.NoiseAmplitude = -cfg.NoiseAmplitude
	}
	return &Engine{cfg: cfg, steps: DefaultPipeline()}
}

// Config devuelve la configuración efectiva.
func (e *Engine) Config() Config {
	return e.cfg
}

// Steps devuelve una copia del pipeline en orden.
func (e *Engine) Steps() []Step {
	return append([]Step(nil), e.steps...)
}

// Price calcula la tarifa final redondeada a 2 decimales.
func (e *Engine) Price(ctx domain.PricingContext, rng Random) float64 {
	return e.Quote(ctx, rng).Final
}

// PreNoise devuelve el precio tras la cadena multiplicativa y el suelo,
// sin consumir entropía.
func (e *Engine) PreNoise(ctx domain.PricingContext) float64 {
	b := e.deterministic(ctx)
	return b.PreNoise
}

// Quote calcula la tarifa y devuelve la traza completa.
//
// El ruido se suma después del suelo, así que el precio final puede quedar
// ligeramente por debajo de FloorRatio × CompetitorPrice.
func (e *Engine) Quote(ctx domain.PricingContext, rng Random) domain.PriceBreakdown {
	b := e.deterministic(ctx)
	if e.cfg.NoiseAmplitude > 0 {
		b.Noise = rng.Uniform(-e.cfg.NoiseAmplitude, e.cfg.NoiseAmplitude)
	}
	b.Final = domain.RoundPrice(b.PreNoise + b.Noise)
	return b
}

// deterministic aplica la tarifa base, los ajustes y el suelo competitivo.
func (e *Engine) deterministic(ctx domain.PricingContext) domain.PriceBreakdown {
	b := domain.PriceBreakdown{
		BaseRate: e.cfg.BaseRate,
		Steps:    make([]domain.AdjustmentStep, 0, len(e.steps)),
	}

	price := e.cfg.BaseRate
	for _, s := range e.steps {
		f := s.Factor(ctx)
		price *= f
		b.Steps = append(b.Steps, domain.AdjustmentStep{Name: s.Name, Factor: f, Price: price})
	}
	b.PreFloor = price

	// Suelo competitivo: se compara contra el precio completo del competidor
	// pero se fija al FloorRatio del mismo.
	if price < ctx.CompetitorPrice {
		price = ctx.CompetitorPrice * e.cfg.FloorRatio
		b.FloorApplied = true
	}
	b.PreNoise = price
	return b
}
