// ABOUTME: CLI commands for daily sustainability activities.
// ABOUTME: Supports add, list, and completion toggling by ID.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var activityListDate string

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"activities", "act"},
	Short:   "Track daily sustainability activities",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an activity for today",
	Long: `Add a sustainability activity for today. New activities start
incomplete; mark them with 'activity done'.

Examples:
  healthtrack activity add "Recycle"
  healthtrack activity add "Bike to work"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		id, err := repo.AddActivity(name)
		if err != nil {
			return fmt.Errorf("failed to add activity: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d", id))
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := repo.ListActivities(activityListDate)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)
		for _, a := range activities {
			mark := faint.Sprint("[ ]")
			if a.Completed {
				mark = green.Sprint("[✓]")
			}
			fmt.Printf("%s %s %s\n", faint.Sprintf("#%-4d", a.ID), mark, a.Name)
		}

		completed, err := repo.CompletedActivitiesCount(activityListDate)
		if err != nil {
			return fmt.Errorf("failed to count completed activities: %w", err)
		}
		total, err := repo.TotalActivitiesCount(activityListDate)
		if err != nil {
			return fmt.Errorf("failed to count activities: %w", err)
		}
		fmt.Printf("%s %d/%d complete\n", faint.Sprint("Progress:"), completed, total)
		return nil
	},
}

var activityDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark an activity complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActivityCompleted(args[0], true)
	},
}

var activityUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark an activity incomplete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActivityCompleted(args[0], false)
	},
}

func setActivityCompleted(idArg string, completed bool) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid activity id: %s", idArg)
	}

	updated, err := repo.SetActivityCompleted(id, completed)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	if !updated {
		return fmt.Errorf("no activity with id %d", id)
	}

	if completed {
		color.Green("✓ Activity %d complete", id)
	} else {
		fmt.Printf("Activity %d marked incomplete\n", id)
	}
	return nil
}

func init() {
	activityListCmd.Flags().StringVar(&activityListDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityDoneCmd)
	activityCmd.AddCommand(activityUndoneCmd)
	rootCmd.AddCommand(activityCmd)
}
