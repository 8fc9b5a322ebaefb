package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/config"
)

// loadConfig resolves the configuration for a command: an explicit
// --manifest wins, otherwise lumen.toml is discovered by walking up from
// the current directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get manifest flag: %w", err)
	}
	if manifestPath == "" {
		found := false
		manifestPath, found, err = config.Discover(".")
		if err != nil {
			return config.Config{}, err
		}
		if !found {
			return config.Config{}, fmt.Errorf("no lumen.toml found (searched from the current directory up); pass --manifest")
		}
	}
	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return config.Config{}, err
	}
	return m.Config, nil
}
