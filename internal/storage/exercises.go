// ABOUTME: Exercise operations for SQLite storage.
// ABOUTME: Insert with derived fields, per-day listing, calorie and carbon sums.
package storage

import (
	"fmt"

	"github.com/harperreed/healthtrack/internal/models"
)

// AddExercise inserts an exercise dated today and returns its assigned id.
// Calories burned and carbon saved are derived from duration and distance
// via the models formulas.
func (d *DB) AddExercise(name string, durationMin int, distanceKm float64) (int64, error) {
	e := models.NewExercise(name, durationMin, distanceKm, d.today())
	res, err := d.db.Exec(
		"INSERT INTO exercises (name, duration, distance, calories_burned, carbon_saved, date) VALUES (?, ?, ?, ?, ?, ?)",
		e.Name, e.Duration, e.Distance, e.CaloriesBurned, e.CarbonSaved, e.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	return id, nil
}

// ListExercises returns the exercises logged on the given day, newest first.
// An empty date means today.
func (d *DB) ListExercises(date string) ([]*models.Exercise, error) {
	rows, err := d.db.Query(
		"SELECT id, name, duration, distance, calories_burned, carbon_saved, date FROM exercises WHERE date = ? ORDER BY id DESC",
		d.dateOrToday(date),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Duration, &e.Distance, &e.CaloriesBurned, &e.CarbonSaved, &e.Date); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// TotalCaloriesBurned sums the calories burned across the given day's
// exercises. Days with no exercises total zero.
func (d *DB) TotalCaloriesBurned(date string) (int, error) {
	var total int
	err := d.db.QueryRow(
		"SELECT COALESCE(SUM(calories_burned), 0) FROM exercises WHERE date = ?",
		d.dateOrToday(date),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total calories burned: %w", err)
	}
	return total, nil
}

// TotalCarbonSaved sums the carbon saved across the given day's exercises.
// Days with no exercises total zero.
func (d *DB) TotalCarbonSaved(date string) (float64, error) {
	var total float64
	err := d.db.QueryRow(
		"SELECT COALESCE(SUM(carbon_saved), 0) FROM exercises WHERE date = ?",
		d.dateOrToday(date),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total carbon saved: %w", err)
	}
	return total, nil
}
