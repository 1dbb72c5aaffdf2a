// ABOUTME: CLI commands for exporting and importing tracking data.
// ABOUTME: Supports JSON and YAML backup files.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracking data",
	Long: `Export all meals, exercises, and activities for backup or sharing.
User accounts are not included.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  healthtrack export json                # Export all data as JSON
  healthtrack export json -o backup.json # Save to file
  healthtrack export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, ok := repo.(storage.Exporter)
		if !ok {
			return fmt.Errorf("backend does not support export")
		}

		data, err := exporter.ExportAll()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var raw []byte
		switch args[0] {
		case "json":
			raw, err = data.EncodeJSON()
		case "yaml":
			raw, err = data.EncodeYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, raw, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}

		fmt.Println(string(raw))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracking data",
	Long: `Import records from an export file (JSON or YAML). Records keep
their original dates; IDs are reassigned. Importing the same file twice
duplicates its records.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, ok := repo.(storage.Exporter)
		if !ok {
			return fmt.Errorf("backend does not support import")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.DecodeExport(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		if err := exporter.ImportAll(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d meals, %d exercises, %d activities",
			len(data.Meals), len(data.Exercises), len(data.Activities))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
