// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for meals, the food catalog, exercises, activities, users.
package storage

// initSchema creates the database schema. Safe to run on every open.
//
// food_items and meal_items are declared but not yet reachable from any
// operation; they back the planned reusable food catalog.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS meals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		calories INTEGER NOT NULL,
		date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS food_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		calories_per_serving INTEGER,
		serving_unit TEXT
	);

	CREATE TABLE IF NOT EXISTS meal_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		meal_id INTEGER NOT NULL,
		food_item_id INTEGER NOT NULL,
		quantity REAL NOT NULL DEFAULT 1,
		FOREIGN KEY (meal_id) REFERENCES meals(id),
		FOREIGN KEY (food_item_id) REFERENCES food_items(id)
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		duration INTEGER NOT NULL,
		distance REAL,
		calories_burned INTEGER NOT NULL,
		carbon_saved REAL NOT NULL,
		date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		completed INTEGER NOT NULL,
		date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		display_name TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_meals_date ON meals(date);
	CREATE INDEX IF NOT EXISTS idx_exercises_date ON exercises(date);
	CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
	`

	_, err := d.db.Exec(schema)
	return err
}
