// ABOUTME: CLI command for the weekly insights view.
// ABOUTME: Per-day trend, weekly totals and averages, environmental equivalents.
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/healthtrack/internal/storage"
	"github.com/spf13/cobra"
)

var insightsEndDate string

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"week"},
	Short:   "Show weekly insights",
	Long: `Show per-day calorie and carbon totals for the last seven days,
with weekly totals, daily averages, and what the saved carbon amounts to.

Examples:
  healthtrack insights
  healthtrack insights --end 2025-03-01  # Week ending on a specific day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		end := time.Now()
		if insightsEndDate != "" {
			var err error
			end, err = time.Parse("2006-01-02", insightsEndDate)
			if err != nil {
				return fmt.Errorf("invalid end date: %s (use YYYY-MM-DD)", insightsEndDate)
			}
		}

		days, err := storage.WeeklyTrend(repo, end)
		if err != nil {
			return fmt.Errorf("failed to build insights: %w", err)
		}

		faint := color.New(color.Faint)
		color.New(color.Bold).Printf("Week ending %s\n", end.Format("2006-01-02"))
		fmt.Printf("%s\n", faint.Sprint("Date        In       Out      CO2"))

		var totalConsumed, totalBurned int
		var totalCarbon float64
		for _, day := range days {
			fmt.Printf("%s  %5d    %5d    %4.1f\n",
				day.Date, day.CaloriesConsumed, day.CaloriesBurned, day.CarbonSaved)
			totalConsumed += day.CaloriesConsumed
			totalBurned += day.CaloriesBurned
			totalCarbon += day.CarbonSaved
		}

		fmt.Println()
		fmt.Printf("  Total consumed  %d cal (avg %d/day)\n",
			totalConsumed, int(math.Round(float64(totalConsumed)/storage.TrendDays)))
		fmt.Printf("  Total burned    %d cal (avg %d/day)\n",
			totalBurned, int(math.Round(float64(totalBurned)/storage.TrendDays)))
		fmt.Printf("  Carbon saved    %.1f kg CO2\n", totalCarbon)

		// Rough equivalents: a tree absorbs ~21 kg CO2 a year; a car mile
		// costs ~0.25 kg.
		fmt.Printf("  %s\n", faint.Sprintf("≈ %.2f trees for a year, %d car miles avoided",
			totalCarbon/21, int(math.Round(totalCarbon*4))))
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringVar(&insightsEndDate, "end", "", "last day of the window (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(insightsCmd)
}
