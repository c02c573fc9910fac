package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de ratepilot.
type Config struct {
	Pricing    PricingConfig    `yaml:"pricing"`
	Scenarios  ScenariosConfig  `yaml:"scenarios"`
	Projection ProjectionConfig `yaml:"projection"`
	Competitor CompetitorConfig `yaml:"competitor"`
	Inputs     InputsConfig     `yaml:"inputs"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// PricingConfig controla el motor de tarifas.
type PricingConfig struct {
	BaseRate       float64 `yaml:"base_rate"`       // tarifa base antes de ajustes
	FloorRatio     float64 `yaml:"floor_ratio"`     // fracción del precio competidor usada como suelo
	NoiseAmplitude float64 `yaml:"noise_amplitude"` // ruido uniforme ±amplitud sobre la tarifa final
}

// ScenariosConfig controla el simulador what-if.
type ScenariosConfig struct {
	Count   int `yaml:"count"`
	Workers int `yaml:"workers"` // 0 = runtime.NumCPU()
}

// ProjectionConfig controla la proyección estacional.
type ProjectionConfig struct {
	HorizonDays int `yaml:"horizon_days"`
	ShowDays    int `yaml:"show_days"` // días que se imprimen en consola
}

// CompetitorConfig controla el scraper de la OTA.
type CompetitorConfig struct {
	SearchURL         string `yaml:"search_url"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
	MaxRetries        int    `yaml:"max_retries"`
	RenderWaitMs      int    `yaml:"render_wait_ms"`
}

// InputsConfig controla la validación de los inputs del usuario.
type InputsConfig struct {
	Strict bool `yaml:"strict"` // true: valores no reconocidos son error en vez de warning
}

// StorageConfig controla el archivo de runs. Desactivado por defecto.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve la configuración por defecto con los overrides de entorno aplicados.
// Se usa cuando no hay archivo de configuración.
func Default() *Config {
	_ = godotenv.Load()

	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg
}

// ScrapeTimeout devuelve el límite por búsqueda como time.Duration.
func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.Competitor.TimeoutSeconds) * time.Second
}

// RenderWait devuelve la espera tras la navegación como time.Duration.
func (c *Config) RenderWait() time.Duration {
	return time.Duration(c.Competitor.RenderWaitMs) * time.Millisecond
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("RATEPILOT_DB_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("RATEPILOT_SEARCH_URL"); v != "" {
		cfg.Competitor.SearchURL = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Pricing.BaseRate <= 0 {
		cfg.Pricing.BaseRate = 80
	}
	if cfg.Pricing.FloorRatio <= 0 {
		cfg.Pricing.FloorRatio = 0.95
	}
	if cfg.Pricing.NoiseAmplitude <= 0 {
		cfg.Pricing.NoiseAmplitude = 5
	}
	if cfg.Scenarios.Count <= 0 {
		cfg.Scenarios.Count = 5
	}
	if cfg.Scenarios.Workers < 0 {
		cfg.Scenarios.Workers = 0
	}
	if cfg.Projection.HorizonDays <= 0 {
		cfg.Projection.HorizonDays = 365
	}
	if cfg.Projection.ShowDays <= 0 {
		cfg.Projection.ShowDays = 10
	}
	if cfg.Competitor.SearchURL == "" {
		cfg.Competitor.SearchURL = "https://www.booking.com/searchresults.html"
	}
	if cfg.Competitor.TimeoutSeconds <= 0 {
		cfg.Competitor.TimeoutSeconds = 45
	}
	if cfg.Competitor.RequestsPerMinute <= 0 {
		cfg.Competitor.RequestsPerMinute = 6
	}
	if cfg.Competitor.MaxRetries <= 0 {
		cfg.Competitor.MaxRetries = 2
	}
	if cfg.Competitor.RenderWaitMs <= 0 {
		cfg.Competitor.RenderWaitMs = 3000
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "ratepilot.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
