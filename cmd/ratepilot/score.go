package main

import (
	"github.com/alejandrodnm/ratepilot/internal/adapters/notify"
	"github.com/spf13/cobra"
)

func newScoreCmd(a *app) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the additive property score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := flags.resolve(a.cfg.Inputs.Strict)
			if err != nil {
				return err
			}
			notify.NewConsoleWriter(cmd.OutOrStdout(), false).PrintScore(pc)
			return nil
		},
	}
	addContextFlags(cmd, &flags)
	return cmd
}
