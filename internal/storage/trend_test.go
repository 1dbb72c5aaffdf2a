// ABOUTME: Tests for weekly trend computation.
// ABOUTME: Seeds dated records through import and checks per-day totals.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/healthtrack/internal/models"
)

func trendEnd(t *testing.T) time.Time {
	t.Helper()
	end, err := time.Parse("2006-01-02", testDay)
	if err != nil {
		t.Fatalf("Failed to parse test day: %v", err)
	}
	return end
}

func TestWeeklyTrendEmpty(t *testing.T) {
	repos := map[string]Repository{
		"sqlite": setupTestDB(t),
		"badger": setupTestKV(t),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			trend, err := WeeklyTrend(repo, trendEnd(t))
			if err != nil {
				t.Fatalf("WeeklyTrend failed: %v", err)
			}

			if len(trend) != TrendDays {
				t.Fatalf("Expected %d days, got %d", TrendDays, len(trend))
			}
			if trend[0].Date != "2024-05-26" {
				t.Errorf("First day = %s, want 2024-05-26", trend[0].Date)
			}
			if trend[6].Date != testDay {
				t.Errorf("Last day = %s, want %s", trend[6].Date, testDay)
			}
			for _, day := range trend {
				if day.CaloriesConsumed != 0 || day.CaloriesBurned != 0 || day.CarbonSaved != 0 {
					t.Errorf("Expected zero totals on %s, got %+v", day.Date, day)
				}
			}
		})
	}
}

func TestWeeklyTrendPerDayTotals(t *testing.T) {
	repos := map[string]Repository{
		"sqlite": setupTestDB(t),
		"badger": setupTestKV(t),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			// Seed records on specific days; import preserves dates.
			seed := &ExportData{
				Meals: []*models.Meal{
					{Name: "Oatmeal", Calories: 300, Date: testDay},
					{Name: "Salad", Calories: 200, Date: "2024-05-31"},
					{Name: "Old dinner", Calories: 900, Date: "2024-05-25"}, // outside window
				},
				Exercises: []*models.Exercise{
					models.NewExercise("Cycling", 30, 2.0, "2024-05-29"),
				},
			}
			if err := repo.(Exporter).ImportAll(seed); err != nil {
				t.Fatalf("ImportAll failed: %v", err)
			}

			trend, err := WeeklyTrend(repo, trendEnd(t))
			if err != nil {
				t.Fatalf("WeeklyTrend failed: %v", err)
			}

			byDate := make(map[string]DayTotals)
			for _, day := range trend {
				byDate[day.Date] = day
			}

			if got := byDate[testDay].CaloriesConsumed; got != 300 {
				t.Errorf("Consumed on %s = %d, want 300", testDay, got)
			}
			if got := byDate["2024-05-31"].CaloriesConsumed; got != 200 {
				t.Errorf("Consumed on 2024-05-31 = %d, want 200", got)
			}
			if got := byDate["2024-05-29"].CaloriesBurned; got != 150 {
				t.Errorf("Burned on 2024-05-29 = %d, want 150", got)
			}
			if got := byDate["2024-05-29"].CarbonSaved; got != 0.4 {
				t.Errorf("Carbon on 2024-05-29 = %f, want 0.4", got)
			}
			if _, ok := byDate["2024-05-25"]; ok {
				t.Error("Window should not include 2024-05-25")
			}

			// The out-of-window meal must not leak into any day's total.
			var totalConsumed int
			for _, day := range trend {
				totalConsumed += day.CaloriesConsumed
			}
			if totalConsumed != 500 {
				t.Errorf("Week total consumed = %d, want 500", totalConsumed)
			}
		})
	}
}
