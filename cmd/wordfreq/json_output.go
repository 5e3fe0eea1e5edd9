package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"wordfreq/internal/services"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return services.Wrap(services.ErrIO, cmd.Name(), "write json", "", err)
	}
	return nil
}
