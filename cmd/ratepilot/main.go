package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/ratepilot/config"
	"github.com/alejandrodnm/ratepilot/internal/domain/pricing"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("ratepilot exited with error", "err", err)
		os.Exit(1)
	}
}

// app es el estado compartido por todos los subcomandos.
type app struct {
	configPath string
	verbose    bool
	logFormat  string
	seed       uint64
	dryRun     bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ratepilot",
		Short: "Nightly room rate advisor",
		Long: `ratepilot recommends a nightly room rate from property attributes,
demand, booking lead time and a competitor reference price.

Examples:
  ratepilot quote --name "Hotel Bellavista" --location central --review 4.6 --demand high
  ratepilot scenarios --seed 42 --batches 4
  ratepilot project --show 14
  ratepilot advise --name "Hotel Bellavista" --brand yes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", defaultConfigPath, "path to config file")
	pf.BoolVar(&a.verbose, "verbose", false, "set log level to debug and print rate breakdowns")
	pf.StringVar(&a.logFormat, "format", "", "log format: text|json (overrides config)")
	pf.Uint64Var(&a.seed, "seed", 0, "random seed for reproducible runs (0 = random)")
	pf.BoolVar(&a.dryRun, "dry-run", false, "no scraping and no run archive")

	root.AddCommand(
		newQuoteCmd(a),
		newScenariosCmd(a),
		newProjectCmd(a),
		newScoreCmd(a),
		newAdviseCmd(a),
		newHistoryCmd(a),
	)
	return root
}

// init carga la configuración y el logger. Sin --config explícito, un archivo
// inexistente no es error: se usan los valores por defecto.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	setupLogger(cfg.Log)
	a.cfg = cfg

	slog.Debug("ratepilot starting",
		"command", cmd.Name(),
		"config", a.configPath,
		"dry_run", a.dryRun,
		"seed", a.seed,
	)
	return nil
}

// engine crea el motor de tarifas con los parámetros de la configuración.
func (a *app) engine() *pricing.Engine {
	return pricing.NewEngine(pricing.Config{
		BaseRate:       a.cfg.Pricing.BaseRate,
		FloorRatio:     a.cfg.Pricing.FloorRatio,
		NoiseAmplitude: a.cfg.Pricing.NoiseAmplitude,
	})
}

// random devuelve la fuente aleatoria y la semilla efectiva, para poder repetir el run.
func (a *app) random() (*pricing.Source, uint64) {
	if a.seed != 0 {
		return pricing.NewSource(a.seed), a.seed
	}
	src, seed := pricing.NewEntropySource()
	slog.Debug("random seed", "seed", seed)
	return src, seed
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stderr: stdout queda para las tablas
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
