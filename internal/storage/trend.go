// ABOUTME: Weekly trend computation over the per-day aggregates.
// ABOUTME: Backend-agnostic; works on any Repository.
package storage

import (
	"fmt"
	"time"
)

// TrendDays is the window length for weekly trends.
const TrendDays = 7

// DayTotals holds one day's aggregate numbers.
type DayTotals struct {
	Date             string  `json:"date"`
	CaloriesConsumed int     `json:"calories_consumed"`
	CaloriesBurned   int     `json:"calories_burned"`
	CarbonSaved      float64 `json:"carbon_saved"`
}

// WeeklyTrend returns per-day totals for the seven days ending on end
// (inclusive), oldest first. Days with no records contribute zeros.
func WeeklyTrend(repo Repository, end time.Time) ([]DayTotals, error) {
	trend := make([]DayTotals, 0, TrendDays)

	for i := TrendDays - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format("2006-01-02")

		consumed, err := repo.TotalCaloriesConsumed(date)
		if err != nil {
			return nil, fmt.Errorf("trend calories consumed for %s: %w", date, err)
		}
		burned, err := repo.TotalCaloriesBurned(date)
		if err != nil {
			return nil, fmt.Errorf("trend calories burned for %s: %w", date, err)
		}
		carbon, err := repo.TotalCarbonSaved(date)
		if err != nil {
			return nil, fmt.Errorf("trend carbon saved for %s: %w", date, err)
		}

		trend = append(trend, DayTotals{
			Date:             date,
			CaloriesConsumed: consumed,
			CaloriesBurned:   burned,
			CarbonSaved:      carbon,
		})
	}

	return trend, nil
}
