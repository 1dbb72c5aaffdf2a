// ABOUTME: Tests for the exercise derivation formulas and constructor.
// ABOUTME: Covers rounding, zero distance, and negative distance cases.
package models

import "testing"

func TestCaloriesBurnedFor(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{0, 0},
		{1, 5},
		{30, 150},
		{45, 225},
	}

	for _, tt := range tests {
		if got := CaloriesBurnedFor(tt.minutes); got != tt.want {
			t.Errorf("CaloriesBurnedFor(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestCarbonSavedFor(t *testing.T) {
	tests := []struct {
		km   float64
		want float64
	}{
		{0, 0},
		{-3.5, 0},
		{2.0, 0.4},
		{1.2, 0.2},
		{0.3, 0.1},
		{5.25, 1.1},
	}

	for _, tt := range tests {
		if got := CarbonSavedFor(tt.km); got != tt.want {
			t.Errorf("CarbonSavedFor(%v) = %v, want %v", tt.km, got, tt.want)
		}
	}
}

func TestNewExerciseDerivesFields(t *testing.T) {
	e := NewExercise("Walking", 30, 2.0, "2024-06-01")

	if e.CaloriesBurned != 150 {
		t.Errorf("CaloriesBurned = %d, want 150", e.CaloriesBurned)
	}
	if e.CarbonSaved != 0.4 {
		t.Errorf("CarbonSaved = %v, want 0.4", e.CarbonSaved)
	}
	if e.Date != "2024-06-01" {
		t.Errorf("Date = %q, want 2024-06-01", e.Date)
	}
	if e.ID != 0 {
		t.Errorf("ID should be unset before insert, got %d", e.ID)
	}
}

func TestNewActivityStartsIncomplete(t *testing.T) {
	a := NewActivity("Recycle", "2024-06-01")
	if a.Completed {
		t.Error("new activity should not be completed")
	}
}
