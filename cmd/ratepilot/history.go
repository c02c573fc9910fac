package main

import (
	"fmt"
	"time"

	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/alejandrodnm/ratepilot/internal/adapters/storage"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		since time.Duration
		runID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived advisory runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := storage.NewSQLiteStorage(a.cfg.Storage.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			console := notify.NewConsoleWriter(cmd.OutOrStdout(), a.verbose)

			if runID != "" {
				series, err := db.GetDailyRates(cmd.Context(), runID)
				if err != nil {
					return err
				}
				if series.Len() == 0 {
					return fmt.Errorf("history: run %q not found", runID)
				}
				return console.ReportProjection(cmd.Context(), series, a.cfg.Projection.ShowDays)
			}

			now := time.Now()
			runs, err := db.GetRuns(cmd.Context(), now.Add(-since), now)
			if err != nil {
				return err
			}
			console.PrintHistory(runs)
			return nil
		},
	}
	cmd.Flags().DurationVar(&since, "since", 30*24*time.Hour, "show runs created within this window")
	cmd.Flags().StringVar(&runID, "run", "", "print the archived projection of one run")
	return cmd
}
