package main

import (
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/alejandrodnm/ratepilot/internal/application/scenario"
	"github.com/alejandrodnm/ratepilot/internal/domain"
	"github.com/spf13/cobra"
)

func newScenariosCmd(a *app) *cobra.Command {
	var (
		flags   contextFlags
		count   int
		batches int
	)

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Generate what-if scenarios around a base context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := flags.resolve(a.cfg.Inputs.Strict)
			if err != nil {
				return err
			}
			if count <= 0 {
				count = a.cfg.Scenarios.Count
			}

			simCfg := scenario.DefaultConfig()
			simCfg.Count = a.cfg.Scenarios.Count
			simCfg.Workers = a.cfg.Scenarios.Workers
			sim := scenario.New(simCfg, a.engine())
			console := notify.NewConsoleWriter(cmd.OutOrStdout(), a.verbose)

			rng, seed := a.random()
			if batches <= 1 {
				return console.ReportScenarios(cmd.Context(), sim.Run(pc, count, rng))
			}

			// cada batch usa seed+i, reproducible con --seed
			results := sim.RunParallel(cmd.Context(), pc, count, batches, seed)
			var all []float64
			for i, batch := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "\n--- batch %d/%d (seed %d) ---\n", i+1, batches, seed+uint64(i))
				if err := console.ReportScenarios(cmd.Context(), batch); err != nil {
					return err
				}
				all = append(all, batch.Prices()...)
			}
			st := domain.Summarize(all)
			fmt.Fprintf(cmd.OutOrStdout(), "\nAll batches: min €%.2f  mean €%.2f  max €%.2f  (n=%d)\n",
				st.Min, st.Mean, st.Max, st.Count)
			slog.Debug("scenario batches reported", "batches", batches, "scenarios", st.Count)
			return nil
		},
	}
	addContextFlags(cmd, &flags)
	cmd.Flags().IntVar(&count, "count", 0, "scenarios per batch (0 = config value)")
	cmd.Flags().IntVar(&batches, "batches", 1, "independent batches run in parallel")
	return cmd
}
