package main

import (
	"github.com/spf13/cobra"

	"wordfreq/internal/services"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Tokenize a corpus and count frequent words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.ensureLogger(cmd, cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return services.Wrap(services.ErrValidation, cmd.Name(), "parse flags", "", err)
	})

	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newCountCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
