// ABOUTME: CLI command for the daily dashboard.
// ABOUTME: Shows calorie, carbon, and activity totals; failed reads degrade to zero.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"dashboard"},
	Short:   "Show today's dashboard",
	Long: `Show the dashboard for a day: calories consumed and burned, carbon
saved, and activity completion. If one number cannot be read it shows
as zero with a notice, and the rest of the dashboard still renders.

Examples:
  healthtrack today
  healthtrack today --date 2025-03-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := todayDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		faint := color.New(color.Faint)
		warn := color.New(color.FgYellow)

		consumed, err := repo.TotalCaloriesConsumed(date)
		if err != nil {
			warn.Printf("! could not read calories consumed: %v\n", err)
			consumed = 0
		}
		burned, err := repo.TotalCaloriesBurned(date)
		if err != nil {
			warn.Printf("! could not read calories burned: %v\n", err)
			burned = 0
		}
		carbon, err := repo.TotalCarbonSaved(date)
		if err != nil {
			warn.Printf("! could not read carbon saved: %v\n", err)
			carbon = 0
		}
		completed, err := repo.CompletedActivitiesCount(date)
		if err != nil {
			warn.Printf("! could not read completed activities: %v\n", err)
			completed = 0
		}
		total, err := repo.TotalActivitiesCount(date)
		if err != nil {
			warn.Printf("! could not read activity count: %v\n", err)
			total = 0
		}

		if u, ok, err := sessions.GetCurrentUser(); err == nil && ok {
			name := u.DisplayName
			if name == "" {
				name = u.Username
			}
			fmt.Printf("%s %s\n", faint.Sprint("Hello,"), name)
		}

		color.New(color.Bold).Printf("Dashboard for %s\n", date)
		fmt.Printf("  Calories in   %d cal\n", consumed)
		fmt.Printf("  Calories out  %d cal\n", burned)
		fmt.Printf("  Net           %d cal\n", consumed-burned)
		fmt.Printf("  Carbon saved  %.1f kg CO2\n", carbon)
		fmt.Printf("  Activities    %d/%d complete\n", completed, total)
		return nil
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(todayCmd)
}
