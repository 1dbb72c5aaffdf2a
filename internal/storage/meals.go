// ABOUTME: Meal operations for SQLite storage.
// ABOUTME: Insert, per-day listing, and the daily calorie sum.
package storage

import (
	"fmt"

	"github.com/harperreed/healthtrack/internal/models"
)

// AddMeal inserts a meal dated today and returns its assigned id.
// Calorie values are stored as given; validation is the caller's concern.
func (d *DB) AddMeal(name string, calories int) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO meals (name, calories, date) VALUES (?, ?, ?)",
		name, calories, d.today(),
	)
	if err != nil {
		return 0, fmt.Errorf("add meal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add meal: %w", err)
	}
	return id, nil
}

// ListMeals returns the meals logged on the given day, newest first.
// An empty date means today.
func (d *DB) ListMeals(date string) ([]*models.Meal, error) {
	rows, err := d.db.Query(
		"SELECT id, name, calories, date FROM meals WHERE date = ? ORDER BY id DESC",
		d.dateOrToday(date),
	)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var meals []*models.Meal
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.Date); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// TotalCaloriesConsumed sums the calories of the given day's meals.
// Days with no meals total zero, never null.
func (d *DB) TotalCaloriesConsumed(date string) (int, error) {
	var total int
	err := d.db.QueryRow(
		"SELECT COALESCE(SUM(calories), 0) FROM meals WHERE date = ?",
		d.dateOrToday(date),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total calories consumed: %w", err)
	}
	return total, nil
}
