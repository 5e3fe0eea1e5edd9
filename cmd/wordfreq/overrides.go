package main

import (
	"strings"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/services"
)

// pathOverride replaces *target with the expanded flag value when the flag
// was set on the command line.
func pathOverride(cmd *cobra.Command, flag, value string, target *string) error {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return services.Wrap(services.ErrValidation, cmd.Name(), "--"+flag, "path must not be empty", nil)
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return services.Wrap(services.ErrValidation, cmd.Name(), "--"+flag, "", err)
	}
	*target = expanded
	return nil
}

// validateOverrides re-runs config validation after flags were applied.
func validateOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return services.Wrap(services.ErrValidation, cmd.Name(), "flags", "", err)
	}
	return nil
}
