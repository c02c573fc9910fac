package main

import (
	"log/slog"

	"github.com/alejandrodnm/ratepilot/internal/adapters/competitor"
	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/alejandrodnm/ratepilot/internal/adapters/storage"
	"github.com/alejandrodnm/ratepilot/internal/application/advisor"
	"github.com/alejandrodnm/ratepilot/internal/application/projection"
	"github.com/alejandrodnm/ratepilot/internal/application/scenario"
	"github.com/alejandrodnm/ratepilot/internal/ports"
	"github.com/spf13/cobra"
)

func newAdviseCmd(a *app) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Full advisory run: competitor data, rate, scenarios and projection",
		Long: `advise looks up the property on the OTA search page to get its reviews,
location and a competitor price, then prices it, explores what-if scenarios and
projects a year of daily rates.

With --dry-run or --competitor-price the OTA is not contacted: --review,
--location and --competitor-price are used instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := flags.resolve(a.cfg.Inputs.Strict)
			if err != nil {
				return err
			}

			var provider ports.CompetitorProvider
			if a.dryRun || cmd.Flags().Changed("competitor-price") {
				provider = competitor.NewStatic(pc.ReviewScore, pc.Location, pc.CompetitorPrice)
			} else {
				provider = competitor.NewScraper(competitor.Config{
					SearchURL:         a.cfg.Competitor.SearchURL,
					Timeout:           a.cfg.ScrapeTimeout(),
					RequestsPerMinute: a.cfg.Competitor.RequestsPerMinute,
					MaxRetries:        a.cfg.Competitor.MaxRetries,
					RenderWait:        a.cfg.RenderWait(),
					Headless:          true,
				})
			}

			var store ports.RunStore
			if a.cfg.Storage.Enabled && !a.dryRun {
				db, err := storage.NewSQLiteStorage(a.cfg.Storage.DSN)
				if err != nil {
					return err
				}
				defer db.Close()
				store = db
			}

			engine := a.engine()
			simCfg := scenario.DefaultConfig()
			simCfg.Count = a.cfg.Scenarios.Count
			projCfg := projection.DefaultConfig()
			projCfg.PropertyName = pc.PropertyName

			adv := advisor.New(
				advisor.Config{
					ScenarioCount: a.cfg.Scenarios.Count,
					HorizonDays:   a.cfg.Projection.HorizonDays,
					ShowDays:      a.cfg.Projection.ShowDays,
				},
				provider,
				engine,
				scenario.New(simCfg, engine),
				projection.New(projCfg, engine),
				notify.NewConsoleWriter(cmd.OutOrStdout(), a.verbose),
				store,
			)

			rng, seed := a.random()
			run, err := adv.Run(cmd.Context(), advisor.Request{
				PropertyName:    pc.PropertyName,
				StrongBrand:     pc.StrongBrand,
				LuxuryAmenities: pc.LuxuryAmenities,
				Demand:          pc.Demand,
				LeadTimeDays:    pc.LeadTimeDays,
				Seed:            seed,
			}, rng)
			if err != nil {
				return err
			}
			if store != nil {
				slog.Info("run archived", "run_id", run.ID, "dsn", a.cfg.Storage.DSN)
			}
			return nil
		},
	}
	addContextFlags(cmd, &flags)
	return cmd
}
