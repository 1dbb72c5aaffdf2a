// ABOUTME: Exercise model and the derived-field formulas (calories, carbon).
// ABOUTME: Derivations live here so screens and storage share one definition.
package models

import "math"

// Exercise represents one logged exercise session.
type Exercise struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Duration       int     `json:"duration"` // minutes
	Distance       float64 `json:"distance"` // kilometers, 0 when not applicable
	CaloriesBurned int     `json:"calories_burned"`
	CarbonSaved    float64 `json:"carbon_saved"` // kg CO2, 1 decimal place
	Date           string  `json:"date"`         // YYYY-MM-DD, local calendar day
}

// CaloriesBurnedFor estimates calories burned for a session of the given
// length: 5 kcal per minute.
func CaloriesBurnedFor(durationMin int) int {
	return durationMin * 5
}

// CarbonSavedFor estimates kilograms of CO2 saved by covering the given
// distance under human power instead of driving: 0.2 kg per km, rounded to
// one decimal place. Zero-or-negative distances save nothing.
func CarbonSavedFor(distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return math.Round(distanceKm*0.2*10) / 10
}

// NewExercise creates an Exercise for the given day with the derived fields
// computed. The ID is assigned by the storage backend on insert.
func NewExercise(name string, durationMin int, distanceKm float64, date string) *Exercise {
	return &Exercise{
		Name:           name,
		Duration:       durationMin,
		Distance:       distanceKm,
		CaloriesBurned: CaloriesBurnedFor(durationMin),
		CarbonSaved:    CarbonSavedFor(distanceKm),
		Date:           date,
	}
}
