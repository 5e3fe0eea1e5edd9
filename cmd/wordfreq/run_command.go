package main

import (
	"github.com/spf13/cobra"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var tokFlags tokenizeFlags
	var cntFlags countFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Tokenize the corpus, then count the resulting word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.commandConfig()
			if err != nil {
				return err
			}
			if err := tokFlags.apply(cmd, &cfg); err != nil {
				return err
			}
			if err := cntFlags.apply(cmd, &cfg); err != nil {
				return err
			}
			if err := validateOverrides(cmd, &cfg); err != nil {
				return err
			}

			if _, err := runTokenizer(cmd, ctx, &cfg); err != nil {
				return err
			}
			summary, err := runCounter(cmd, ctx, &cfg, cntFlags.list || cntFlags.json)
			if err != nil {
				return err
			}
			return writeSummary(cmd, summary, cntFlags)
		},
	}
	tokFlags.register(cmd)
	cntFlags.register(cmd, false)
	return cmd
}
