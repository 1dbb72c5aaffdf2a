// ABOUTME: Export and import functionality for tracking data.
// ABOUTME: Supports JSON and YAML backup formats over both backends.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/healthtrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tracking data.
// User accounts are deliberately left out: exports are meant to be
// shareable, and password hashes don't belong in them.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Meals      []*models.Meal     `json:"meals" yaml:"meals"`
	Exercises  []*models.Exercise `json:"exercises" yaml:"exercises"`
	Activities []*models.Activity `json:"activities" yaml:"activities"`
}

// Exporter is implemented by backends that can dump and restore their
// full record history, not just one day's.
type Exporter interface {
	ExportAll() (*ExportData, error)
	ImportAll(data *ExportData) error
}

// DecodeExport parses an export file in JSON or YAML form.
func DecodeExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &data, nil
}

// EncodeJSON renders an export as indented JSON.
func (e *ExportData) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// EncodeYAML renders an export as YAML.
func (e *ExportData) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(e)
}

func newExportData() *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "healthtrack",
	}
}

// --- SQLite backend ---

// ExportAll retrieves every meal, exercise, and activity, newest first.
func (d *DB) ExportAll() (*ExportData, error) {
	data := newExportData()

	rows, err := d.db.Query("SELECT id, name, calories, date FROM meals ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("export meals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.Date); err != nil {
			return nil, fmt.Errorf("export meals: %w", err)
		}
		data.Meals = append(data.Meals, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export meals: %w", err)
	}

	exRows, err := d.db.Query("SELECT id, name, duration, distance, calories_burned, carbon_saved, date FROM exercises ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	defer exRows.Close()
	for exRows.Next() {
		var e models.Exercise
		if err := exRows.Scan(&e.ID, &e.Name, &e.Duration, &e.Distance, &e.CaloriesBurned, &e.CarbonSaved, &e.Date); err != nil {
			return nil, fmt.Errorf("export exercises: %w", err)
		}
		data.Exercises = append(data.Exercises, &e)
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}

	actRows, err := d.db.Query("SELECT id, name, completed, date FROM activities ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("export activities: %w", err)
	}
	defer actRows.Close()
	for actRows.Next() {
		var a models.Activity
		var completed int
		if err := actRows.Scan(&a.ID, &a.Name, &completed, &a.Date); err != nil {
			return nil, fmt.Errorf("export activities: %w", err)
		}
		a.Completed = completed != 0
		data.Activities = append(data.Activities, &a)
	}
	if err := actRows.Err(); err != nil {
		return nil, fmt.Errorf("export activities: %w", err)
	}

	return data, nil
}

// ImportAll inserts exported records, preserving their dates. Record IDs
// are reassigned by the database.
func (d *DB) ImportAll(data *ExportData) error {
	for _, m := range data.Meals {
		if _, err := d.db.Exec(
			"INSERT INTO meals (name, calories, date) VALUES (?, ?, ?)",
			m.Name, m.Calories, m.Date,
		); err != nil {
			return fmt.Errorf("import meal: %w", err)
		}
	}
	for _, e := range data.Exercises {
		if _, err := d.db.Exec(
			"INSERT INTO exercises (name, duration, distance, calories_burned, carbon_saved, date) VALUES (?, ?, ?, ?, ?, ?)",
			e.Name, e.Duration, e.Distance, e.CaloriesBurned, e.CarbonSaved, e.Date,
		); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, a := range data.Activities {
		completed := 0
		if a.Completed {
			completed = 1
		}
		if _, err := d.db.Exec(
			"INSERT INTO activities (name, completed, date) VALUES (?, ?, ?)",
			a.Name, completed, a.Date,
		); err != nil {
			return fmt.Errorf("import activity: %w", err)
		}
	}
	return nil
}

// --- Badger backend ---

// ExportAll retrieves every meal, exercise, and activity, newest first.
func (s *KVStore) ExportAll() (*ExportData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := newExportData()

	meals, err := readTable[*models.Meal](s, "meals")
	if err != nil {
		return nil, err
	}
	data.Meals = meals

	exercises, err := readTable[*models.Exercise](s, "exercises")
	if err != nil {
		return nil, err
	}
	data.Exercises = exercises

	activities, err := readTable[*models.Activity](s, "activities")
	if err != nil {
		return nil, err
	}
	data.Activities = activities

	return data, nil
}

// ImportAll inserts exported records, preserving their dates. Record IDs
// are reassigned by the store.
func (s *KVStore) ImportAll(data *ExportData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meals, err := readTable[*models.Meal](s, "meals")
	if err != nil {
		return err
	}
	for _, src := range data.Meals {
		m := *src
		m.ID = nextID(meals, func(r *models.Meal) int64 { return r.ID })
		meals = append([]*models.Meal{&m}, meals...)
	}
	if err := writeTable(s, "meals", meals); err != nil {
		return err
	}

	exercises, err := readTable[*models.Exercise](s, "exercises")
	if err != nil {
		return err
	}
	for _, src := range data.Exercises {
		e := *src
		e.ID = nextID(exercises, func(r *models.Exercise) int64 { return r.ID })
		exercises = append([]*models.Exercise{&e}, exercises...)
	}
	if err := writeTable(s, "exercises", exercises); err != nil {
		return err
	}

	activities, err := readTable[*models.Activity](s, "activities")
	if err != nil {
		return err
	}
	for _, src := range data.Activities {
		a := *src
		a.ID = nextID(activities, func(r *models.Activity) int64 { return r.ID })
		activities = append([]*models.Activity{&a}, activities...)
	}
	return writeTable(s, "activities", activities)
}

var (
	_ Exporter = (*DB)(nil)
	_ Exporter = (*KVStore)(nil)
)
