// ABOUTME: Activity operations for SQLite storage.
// ABOUTME: Insert, per-day listing, completion toggling, and daily counts.
package storage

import (
	"fmt"

	"github.com/harperreed/healthtrack/internal/models"
)

// AddActivity inserts an incomplete activity dated today and returns its
// assigned id.
func (d *DB) AddActivity(name string) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO activities (name, completed, date) VALUES (?, 0, ?)",
		name, d.today(),
	)
	if err != nil {
		return 0, fmt.Errorf("add activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add activity: %w", err)
	}
	return id, nil
}

// ListActivities returns the activities for the given day, newest first.
// An empty date means today.
func (d *DB) ListActivities(date string) ([]*models.Activity, error) {
	rows, err := d.db.Query(
		"SELECT id, name, completed, date FROM activities WHERE date = ? ORDER BY id DESC",
		d.dateOrToday(date),
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		var completed int
		if err := rows.Scan(&a.ID, &a.Name, &completed, &a.Date); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Completed = completed != 0
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// SetActivityCompleted sets the completion flag on an activity. Returns true
// iff a row was updated; an unknown id reports false with no error.
func (d *DB) SetActivityCompleted(id int64, completed bool) (bool, error) {
	flag := 0
	if completed {
		flag = 1
	}
	res, err := d.db.Exec("UPDATE activities SET completed = ? WHERE id = ?", flag, id)
	if err != nil {
		return false, fmt.Errorf("set activity completed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set activity completed: %w", err)
	}
	return affected > 0, nil
}

// CompletedActivitiesCount counts the given day's completed activities.
func (d *DB) CompletedActivitiesCount(date string) (int, error) {
	var count int
	err := d.db.QueryRow(
		"SELECT COUNT(*) FROM activities WHERE date = ? AND completed = 1",
		d.dateOrToday(date),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("completed activities count: %w", err)
	}
	return count, nil
}

// TotalActivitiesCount counts all of the given day's activities.
func (d *DB) TotalActivitiesCount(date string) (int, error) {
	var count int
	err := d.db.QueryRow(
		"SELECT COUNT(*) FROM activities WHERE date = ?",
		d.dateOrToday(date),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("total activities count: %w", err)
	}
	return count, nil
}
