// ABOUTME: CLI commands for recording and listing exercise sessions.
// ABOUTME: Calories burned and carbon saved are derived from duration and distance.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exerciseListDate string

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Track exercise sessions",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name> <minutes> [distance_km]",
	Short: "Record an exercise session",
	Long: `Record an exercise session. Calories burned are derived from the
duration; carbon saved is derived from the distance (for trips that
replace driving). Distance is optional and defaults to zero.

Examples:
  healthtrack exercise add Running 30
  healthtrack exercise add Cycling 45 12.5`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		duration, err := strconv.Atoi(args[1])
		if err != nil || duration <= 0 {
			return fmt.Errorf("invalid duration: %s", args[1])
		}

		var distance float64
		if len(args) == 3 {
			distance, err = strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid distance: %s", args[2])
			}
		}

		id, err := repo.AddExercise(name, duration, distance)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Logged %s", name)
		faint := color.New(color.Faint)
		fmt.Printf("  %s %d min", faint.Sprintf("#%d", id), duration)
		if distance > 0 {
			fmt.Printf(", %.1f km", distance)
		}
		fmt.Println()
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercise sessions for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.ListExercises(exerciseListDate)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %3d min %4d cal %.1f kg CO2\n",
				faint.Sprintf("#%-4d", e.ID),
				padRight(truncate(e.Name, 24), 24),
				e.Duration,
				e.CaloriesBurned,
				e.CarbonSaved)
		}

		burned, err := repo.TotalCaloriesBurned(exerciseListDate)
		if err != nil {
			return fmt.Errorf("failed to total calories burned: %w", err)
		}
		carbon, err := repo.TotalCarbonSaved(exerciseListDate)
		if err != nil {
			return fmt.Errorf("failed to total carbon saved: %w", err)
		}
		fmt.Printf("%s %d cal burned, %.1f kg CO2 saved\n", faint.Sprint("Total:"), burned, carbon)
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	rootCmd.AddCommand(exerciseCmd)
}
