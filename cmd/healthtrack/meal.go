// ABOUTME: CLI commands for recording and listing meals.
// ABOUTME: Supports per-date listing with a running calorie total.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var mealListDate string

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"meals", "m"},
	Short:   "Track meals and calories",
}

var mealAddCmd = &cobra.Command{
	Use:   "add <name> <calories>",
	Short: "Record a meal",
	Long: `Record a meal with its calorie count. The meal is dated today.

Examples:
  healthtrack meal add "Oatmeal" 300
  healthtrack meal add "Chicken salad" 450`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		calories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid calorie count: %s", args[1])
		}

		id, err := repo.AddMeal(name, calories)
		if err != nil {
			return fmt.Errorf("failed to add meal: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %d cal\n", color.New(color.Faint).Sprintf("#%d", id), calories)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meals for a date",
	Long: `List meals recorded on a date, newest first, with the day's total.

Examples:
  healthtrack meal list                    # Today's meals
  healthtrack meal list --date 2025-03-01  # A specific day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meals, err := repo.ListMeals(mealListDate)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		if len(meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meals {
			fmt.Printf("%s %s %4d cal\n",
				faint.Sprintf("#%-4d", m.ID),
				padRight(truncate(m.Name, 30), 30),
				m.Calories)
		}

		total, err := repo.TotalCaloriesConsumed(mealListDate)
		if err != nil {
			return fmt.Errorf("failed to total calories: %w", err)
		}
		fmt.Printf("%s %d cal\n", faint.Sprint("Total:"), total)
		return nil
	},
}

func init() {
	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	rootCmd.AddCommand(mealCmd)
}
