// ABOUTME: Tests for the badger KVStore Repository implementation.
// ABOUTME: Mirrors the SQLite suite to keep the backend contract aligned.
package storage

import (
	"errors"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

// setupTestKV creates a badger store in a temp directory with a fixed clock.
func setupTestKV(t *testing.T) *KVStore {
	t.Helper()
	s, err := OpenKV(t.TempDir())
	if err != nil {
		t.Fatalf("OpenKV failed: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVTodayFollowsClock(t *testing.T) {
	s := setupTestKV(t)
	if got := s.Today(); got != testDay {
		t.Errorf("Today() = %s, want %s", got, testDay)
	}
}

func TestOpenKVCreatesEmptyTables(t *testing.T) {
	s := setupTestKV(t)

	for _, table := range tableNames {
		err := s.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get(tableKey(table))
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if string(val) != "[]" {
				t.Errorf("table %s should start empty, got %s", table, val)
			}
			return nil
		})
		if err != nil {
			t.Errorf("table key missing for %s: %v", table, err)
		}
	}
}

func TestKVMealsNewestFirst(t *testing.T) {
	s := setupTestKV(t)

	id1, err := s.AddMeal("Oatmeal", 320)
	if err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	id2, err := s.AddMeal("Salad", 180)
	if err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}

	meals, err := s.ListMeals("")
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].Name != "Salad" || meals[1].Name != "Oatmeal" {
		t.Errorf("expected newest first, got [%s, %s]", meals[0].Name, meals[1].Name)
	}

	total, err := s.TotalCaloriesConsumed(testDay)
	if err != nil {
		t.Fatalf("TotalCaloriesConsumed failed: %v", err)
	}
	if total != 500 {
		t.Errorf("total calories = %d, want 500", total)
	}
}

func TestKVExerciseAggregates(t *testing.T) {
	s := setupTestKV(t)

	if _, err := s.AddExercise("Walking", 30, 2.0); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if _, err := s.AddExercise("Plank", 10, 0); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}

	burned, err := s.TotalCaloriesBurned("")
	if err != nil {
		t.Fatalf("TotalCaloriesBurned failed: %v", err)
	}
	if burned != 200 {
		t.Errorf("TotalCaloriesBurned = %d, want 200", burned)
	}

	carbon, err := s.TotalCarbonSaved("")
	if err != nil {
		t.Fatalf("TotalCarbonSaved failed: %v", err)
	}
	if carbon != 0.4 {
		t.Errorf("TotalCarbonSaved = %v, want 0.4", carbon)
	}
}

func TestKVAggregatesAreZeroForEmptyDays(t *testing.T) {
	s := setupTestKV(t)

	total, err := s.TotalCaloriesConsumed("2020-01-01")
	if err != nil {
		t.Fatalf("TotalCaloriesConsumed failed: %v", err)
	}
	if total != 0 {
		t.Errorf("TotalCaloriesConsumed = %d, want 0", total)
	}

	done, err := s.CompletedActivitiesCount("2020-01-01")
	if err != nil {
		t.Fatalf("CompletedActivitiesCount failed: %v", err)
	}
	count, err := s.TotalActivitiesCount("2020-01-01")
	if err != nil {
		t.Fatalf("TotalActivitiesCount failed: %v", err)
	}
	if done != 0 || count != 0 {
		t.Errorf("expected zero counts, got done=%d total=%d", done, count)
	}
}

func TestKVActivityCompletion(t *testing.T) {
	s := setupTestKV(t)

	id, err := s.AddActivity("Recycle")
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}

	ok, err := s.SetActivityCompleted(id, true)
	if err != nil {
		t.Fatalf("SetActivityCompleted failed: %v", err)
	}
	if !ok {
		t.Error("expected update to report success")
	}

	done, err := s.CompletedActivitiesCount("")
	if err != nil {
		t.Fatalf("CompletedActivitiesCount failed: %v", err)
	}
	if done != 1 {
		t.Errorf("completed count = %d, want 1", done)
	}

	if _, err := s.SetActivityCompleted(id, false); err != nil {
		t.Fatalf("SetActivityCompleted failed: %v", err)
	}
	done, err = s.CompletedActivitiesCount("")
	if err != nil {
		t.Fatalf("CompletedActivitiesCount failed: %v", err)
	}
	if done != 0 {
		t.Errorf("completed count after untoggle = %d, want 0", done)
	}

	ok, err = s.SetActivityCompleted(9999, true)
	if err != nil {
		t.Fatalf("SetActivityCompleted failed: %v", err)
	}
	if ok {
		t.Error("expected false for unknown id")
	}
}

func TestKVUsers(t *testing.T) {
	s := setupTestKV(t)

	if _, err := s.CreateUser("alice", "pw1", "Alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if _, err := s.CreateUser("alice", "pw2", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	u, err := s.AuthenticateUser("alice", "pw1")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if u.DisplayName != "Alice" {
		t.Errorf("DisplayName = %q, want Alice", u.DisplayName)
	}
	if u.Password == "pw1" {
		t.Error("password must not be stored in cleartext")
	}

	if _, err := s.AuthenticateUser("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.AuthenticateUser("nobody", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenKV(dir)
	if err != nil {
		t.Fatalf("OpenKV failed: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	if _, err := s.AddMeal("Breakfast", 400); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := OpenKV(dir)
	if err != nil {
		t.Fatalf("second OpenKV failed: %v", err)
	}
	defer s2.Close()

	meals, err := s2.ListMeals(testDay)
	if err != nil {
		t.Fatalf("ListMeals failed: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Breakfast" {
		t.Fatalf("expected persisted meal, got %+v", meals)
	}
}
