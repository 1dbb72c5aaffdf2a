// ABOUTME: Badger-backed key-value Repository implementation.
// ABOUTME: Each logical table is one key holding a JSON list, newest first.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/harperreed/healthtrack/internal/models"
)

const tableKeyPrefix = "table:"

// tableNames lists every logical table the KV backend persists. food_items
// and meal_items are pre-created empty so both backends expose the same
// layout, even though no operation touches them yet.
var tableNames = []string{"meals", "food_items", "meal_items", "exercises", "activities", "users"}

// KVStore is the badger-backed Repository implementation. Records live as
// JSON lists under one key per table; inserts prepend, so lists are always
// newest first and ids are assigned max+1.
type KVStore struct {
	dir string
	db  *badger.DB
	mu  sync.Mutex
	now func() time.Time
}

// OpenKV opens or creates a badger store rooted at dir. Missing table keys
// are created with an empty list, so reopening is a no-op.
func OpenKV(dir string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}

	s := &KVStore{dir: dir, db: db, now: time.Now}
	if err := s.ensureTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying badger database.
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Today returns the current local calendar day in YYYY-MM-DD form,
// per the store's clock.
func (s *KVStore) Today() string {
	return s.today()
}

func (s *KVStore) today() string {
	return s.now().Format("2006-01-02")
}

func (s *KVStore) dateOrToday(date string) string {
	if date == "" {
		return s.today()
	}
	return date
}

func tableKey(table string) []byte {
	return []byte(tableKeyPrefix + table)
}

// ensureTables creates an empty list for every missing table key.
func (s *KVStore) ensureTables() error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, table := range tableNames {
			key := tableKey(table)
			_, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				if err := txn.Set(key, []byte("[]")); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// readTable loads and decodes a table's record list.
func readTable[T any](s *KVStore, table string) ([]T, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tableKey(table))
		if err == badger.ErrKeyNotFound {
			raw = []byte("[]")
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}

	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode table %s: %w", table, err)
	}
	return rows, nil
}

// writeTable encodes and stores a table's record list.
func writeTable[T any](s *KVStore, table string, rows []T) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tableKey(table), data)
	})
	if err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

// --- Meal operations ---

// AddMeal inserts a meal dated today and returns its assigned id.
func (s *KVStore) AddMeal(name string, calories int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meals, err := readTable[*models.Meal](s, "meals")
	if err != nil {
		return 0, err
	}

	m := models.NewMeal(name, calories, s.today())
	m.ID = nextID(meals, func(r *models.Meal) int64 { return r.ID })
	meals = append([]*models.Meal{m}, meals...)

	if err := writeTable(s, "meals", meals); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// ListMeals returns the meals logged on the given day, newest first.
func (s *KVStore) ListMeals(date string) ([]*models.Meal, error) {
	meals, err := readTable[*models.Meal](s, "meals")
	if err != nil {
		return nil, err
	}

	day := s.dateOrToday(date)
	var out []*models.Meal
	for _, m := range meals {
		if m.Date == day {
			out = append(out, m)
		}
	}
	return out, nil
}

// TotalCaloriesConsumed sums the calories of the given day's meals.
func (s *KVStore) TotalCaloriesConsumed(date string) (int, error) {
	meals, err := s.ListMeals(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total, nil
}

// --- Exercise operations ---

// AddExercise inserts an exercise dated today with derived fields computed.
func (s *KVStore) AddExercise(name string, durationMin int, distanceKm float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercises, err := readTable[*models.Exercise](s, "exercises")
	if err != nil {
		return 0, err
	}

	e := models.NewExercise(name, durationMin, distanceKm, s.today())
	e.ID = nextID(exercises, func(r *models.Exercise) int64 { return r.ID })
	exercises = append([]*models.Exercise{e}, exercises...)

	if err := writeTable(s, "exercises", exercises); err != nil {
		return 0, err
	}
	return e.ID, nil
}

// ListExercises returns the exercises logged on the given day, newest first.
func (s *KVStore) ListExercises(date string) ([]*models.Exercise, error) {
	exercises, err := readTable[*models.Exercise](s, "exercises")
	if err != nil {
		return nil, err
	}

	day := s.dateOrToday(date)
	var out []*models.Exercise
	for _, e := range exercises {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out, nil
}

// TotalCaloriesBurned sums calories burned across the given day's exercises.
func (s *KVStore) TotalCaloriesBurned(date string) (int, error) {
	exercises, err := s.ListExercises(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range exercises {
		total += e.CaloriesBurned
	}
	return total, nil
}

// TotalCarbonSaved sums carbon saved across the given day's exercises.
func (s *KVStore) TotalCarbonSaved(date string) (float64, error) {
	exercises, err := s.ListExercises(date)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range exercises {
		total += e.CarbonSaved
	}
	return total, nil
}

// --- Activity operations ---

// AddActivity inserts an incomplete activity dated today.
func (s *KVStore) AddActivity(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := readTable[*models.Activity](s, "activities")
	if err != nil {
		return 0, err
	}

	a := models.NewActivity(name, s.today())
	a.ID = nextID(activities, func(r *models.Activity) int64 { return r.ID })
	activities = append([]*models.Activity{a}, activities...)

	if err := writeTable(s, "activities", activities); err != nil {
		return 0, err
	}
	return a.ID, nil
}

// ListActivities returns the activities for the given day, newest first.
func (s *KVStore) ListActivities(date string) ([]*models.Activity, error) {
	activities, err := readTable[*models.Activity](s, "activities")
	if err != nil {
		return nil, err
	}

	day := s.dateOrToday(date)
	var out []*models.Activity
	for _, a := range activities {
		if a.Date == day {
			out = append(out, a)
		}
	}
	return out, nil
}

// SetActivityCompleted sets the completion flag on an activity. Returns true
// iff a record matched; an unknown id reports false with no error.
func (s *KVStore) SetActivityCompleted(id int64, completed bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := readTable[*models.Activity](s, "activities")
	if err != nil {
		return false, err
	}

	for _, a := range activities {
		if a.ID == id {
			a.Completed = completed
			if err := writeTable(s, "activities", activities); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// CompletedActivitiesCount counts the given day's completed activities.
func (s *KVStore) CompletedActivitiesCount(date string) (int, error) {
	activities, err := s.ListActivities(date)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, a := range activities {
		if a.Completed {
			count++
		}
	}
	return count, nil
}

// TotalActivitiesCount counts all of the given day's activities.
func (s *KVStore) TotalActivitiesCount(date string) (int, error) {
	activities, err := s.ListActivities(date)
	if err != nil {
		return 0, err
	}
	return len(activities), nil
}

// --- User operations ---

// CreateUser registers a new user, storing a bcrypt hash of the password.
// The username is checked for duplicates before insert so the KV backend
// reports the same ErrUsernameTaken the SQLite UNIQUE constraint produces.
func (s *KVStore) CreateUser(username, password, displayName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readTable[*models.User](s, "users")
	if err != nil {
		return 0, err
	}

	for _, u := range users {
		if u.Username == username {
			return 0, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:          nextID(users, func(r *models.User) int64 { return r.ID }),
		Username:    username,
		Password:    string(hash),
		DisplayName: displayName,
		CreatedAt:   s.now().UTC(),
	}
	users = append([]*models.User{u}, users...)

	if err := writeTable(s, "users", users); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// AuthenticateUser returns the user record matching the given credentials,
// collapsing unknown-user and wrong-password into ErrInvalidCredentials.
func (s *KVStore) AuthenticateUser(username, password string) (*models.User, error) {
	users, err := readTable[*models.User](s, "users")
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return u, nil
	}
	return nil, ErrInvalidCredentials
}

// nextID assigns the next id for a table: one past the largest in use.
func nextID[T any](rows []T, id func(T) int64) int64 {
	var max int64
	for _, r := range rows {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}

// compile-time interface checks
var (
	_ Repository = (*DB)(nil)
	_ Repository = (*KVStore)(nil)
)
