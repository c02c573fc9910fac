package main

import (
	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/spf13/cobra"
)

func newQuoteCmd(a *app) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price one context and print the adjustment breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := flags.resolve(a.cfg.Inputs.Strict)
			if err != nil {
				return err
			}
			rng, _ := a.random()
			quote := a.engine().Quote(pc, rng)

			console := notify.NewConsoleWriter(cmd.OutOrStdout(), true)
			return console.ReportQuote(cmd.Context(), pc, quote)
		},
	}
	addContextFlags(cmd, &flags)
	return cmd
}
