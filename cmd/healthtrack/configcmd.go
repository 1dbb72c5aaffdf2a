// ABOUTME: CLI commands for viewing and changing configuration.
// ABOUTME: Manages the storage backend selection and data directory.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/healthtrack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("backend   %s\n", cfg.GetBackend())
		fmt.Printf("data_dir  %s\n", cfg.GetDataDir())
		fmt.Printf("%s\n", faint.Sprintf("config file: %s", config.GetConfigPath()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it.

KEYS:

  backend   storage backend: sqlite or badger
  data_dir  directory holding the data files

Switching backends does not migrate data; each backend keeps its own
files under the data directory.

Examples:
  healthtrack config set backend badger
  healthtrack config set data_dir ~/health-data`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "backend":
			if !validBackend(value) {
				return fmt.Errorf("unknown backend %q (valid: %s)", value, strings.Join(config.Backends, ", "))
			}
			cfg.Backend = value
		case "data_dir":
			cfg.DataDir = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s = %s", key, value)
		return nil
	},
}

func validBackend(name string) bool {
	for _, b := range config.Backends {
		if b == name {
			return true
		}
	}
	return false
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
