// ABOUTME: Root Cobra command for healthtrack CLI.
// ABOUTME: Handles config, storage, and session lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/healthtrack/internal/config"
	"github.com/harperreed/healthtrack/internal/session"
	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	repo     storage.Repository
	sessions *session.Store
)

var rootCmd = &cobra.Command{
	Use:   "healthtrack",
	Short: "Personal health and sustainability tracker",
	Long: `Healthtrack is a CLI tool for tracking meals, exercise, and
sustainability activities.

WHAT IT TRACKS:

  Meals       what you ate and its calorie count
  Exercise    duration, calories burned, carbon saved by walking/cycling
  Activities  daily sustainability habits with completion state

QUICK START:

  $ healthtrack meal add "Oatmeal" 300        # Log a meal
  $ healthtrack exercise add Cycling 30 5.2   # 30 min, 5.2 km
  $ healthtrack activity add "Recycle"        # Add a daily activity
  $ healthtrack activity done 1               # Mark it complete
  $ healthtrack today                         # Today's dashboard

ACCOUNTS:

  $ healthtrack signup alice --password s3cret --name "Alice"
  $ healthtrack login alice --password s3cret
  $ healthtrack whoami
  $ healthtrack logout

MCP INTEGRATION:

  Run 'healthtrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records are stored in SQLite at ~/.local/share/healthtrack by default.
  Run 'healthtrack config set backend badger' to switch to the key-value
  backend. Both backends hold the same data shapes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		sessions = session.New(session.DefaultPath())

		// Config commands manage the backend itself; don't open it
		if isConfigCommand(cmd) {
			return nil
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
