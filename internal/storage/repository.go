// ABOUTME: Repository interface implemented by the SQLite and badger backends.
// ABOUTME: Defines the uniform operation set and the shared error identifiers.
package storage

import (
	"errors"

	"github.com/harperreed/healthtrack/internal/models"
)

// Shared error identifiers. Both backends return exactly these values so the
// command layer can stay backend-agnostic.
var (
	// ErrUsernameTaken is returned by CreateUser when the username exists.
	ErrUsernameTaken = errors.New("username_taken")

	// ErrInvalidCredentials is returned by AuthenticateUser for an unknown
	// username and for a wrong password alike. Callers cannot tell the two
	// apart, and that is deliberate.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// Repository defines the data-access operations shared by all storage
// backends. An empty date argument means "today" (local calendar day).
// Listing operations return rows newest first; aggregate operations return
// zero for days with no rows.
type Repository interface {
	// Meal operations
	AddMeal(name string, calories int) (int64, error)
	ListMeals(date string) ([]*models.Meal, error)
	TotalCaloriesConsumed(date string) (int, error)

	// Exercise operations. Derived fields (calories burned, carbon saved)
	// are computed from duration and distance at insert time.
	AddExercise(name string, durationMin int, distanceKm float64) (int64, error)
	ListExercises(date string) ([]*models.Exercise, error)
	TotalCaloriesBurned(date string) (int, error)
	TotalCarbonSaved(date string) (float64, error)

	// Activity operations
	AddActivity(name string) (int64, error)
	ListActivities(date string) ([]*models.Activity, error)
	SetActivityCompleted(id int64, completed bool) (bool, error)
	CompletedActivitiesCount(date string) (int, error)
	TotalActivitiesCount(date string) (int, error)

	// User operations
	CreateUser(username, password, displayName string) (int64, error)
	AuthenticateUser(username, password string) (*models.User, error)

	// Lifecycle
	Close() error
}
