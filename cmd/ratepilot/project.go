package main

import (
	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/alejandrodnm/ratepilot/internal/application/projection"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		name    string
		horizon int
		show    int
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a daily rate for every day of the horizon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if horizon <= 0 {
				horizon = a.cfg.Projection.HorizonDays
			}
			if show <= 0 {
				show = a.cfg.Projection.ShowDays
			}

			projCfg := projection.DefaultConfig()
			projCfg.PropertyName = name
			projector := projection.New(projCfg, a.engine())

			rng, _ := a.random()
			series := projector.ProjectYear(horizon, rng)

			console := notify.NewConsoleWriter(cmd.OutOrStdout(), a.verbose)
			return console.ReportProjection(cmd.Context(), series, show)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "property name")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "days to project (0 = config value)")
	cmd.Flags().IntVar(&show, "show", 0, "days to print (0 = config value)")
	return cmd
}
