// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Tests truncate, padRight, validBackend, and registered commands.
package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "Oatmeal",
			maxLen: 30,
			want:   "Oatmeal",
		},
		{
			name:   "exact length unchanged",
			input:  "abcde",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "long string truncated with ellipsis",
			input:  "a very long meal name indeed",
			maxLen: 10,
			want:   "a very ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
			if len(got) > tt.maxLen {
				t.Errorf("truncate result %q longer than %d", got, tt.maxLen)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "pads short string",
			input:  "abc",
			length: 6,
			want:   "abc   ",
		},
		{
			name:   "leaves long string alone",
			input:  "abcdefgh",
			length: 4,
			want:   "abcdefgh",
		},
		{
			name:   "exact length unchanged",
			input:  "abcd",
			length: 4,
			want:   "abcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestValidBackend(t *testing.T) {
	if !validBackend("sqlite") {
		t.Error("Expected sqlite to be a valid backend")
	}
	if !validBackend("badger") {
		t.Error("Expected badger to be a valid backend")
	}
	if validBackend("localstorage") {
		t.Error("Expected localstorage to be invalid")
	}
	if validBackend("") {
		t.Error("Expected empty backend to be invalid")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"meal", "exercise", "activity", "today", "insights",
		"signup", "login", "logout", "whoami",
		"config", "mcp", "export", "import", "version",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestInsightsCommand(t *testing.T) {
	if insightsCmd.Flags().Lookup("end") == nil {
		t.Error("Expected insights to have --end flag")
	}
	hasWeek := false
	for _, a := range insightsCmd.Aliases {
		if a == "week" {
			hasWeek = true
		}
	}
	if !hasWeek {
		t.Error("Expected insights to be aliased as week")
	}
}

func TestListCommandsHaveDateFlag(t *testing.T) {
	cmds := map[string]*cobra.Command{
		"meal list":     mealListCmd,
		"exercise list": exerciseListCmd,
		"activity list": activityListCmd,
		"today":         todayCmd,
	}

	for name, c := range cmds {
		if c.Flags().Lookup("date") == nil {
			t.Errorf("Expected %s to have --date flag", name)
		}
	}
}
