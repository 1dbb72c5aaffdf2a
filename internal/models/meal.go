// ABOUTME: Meal model plus the unused food catalog types (FoodItem, MealItem).
// ABOUTME: Meals are single logged eating events dated to a local calendar day.
package models

// Meal represents one logged eating event.
type Meal struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Date     string `json:"date"` // YYYY-MM-DD, local calendar day
}

// NewMeal creates a Meal dated to the given day. The ID is assigned by the
// storage backend on insert.
func NewMeal(name string, calories int, date string) *Meal {
	return &Meal{
		Name:     name,
		Calories: calories,
		Date:     date,
	}
}

// FoodItem is a reusable catalog entry. The table exists in the schema but no
// operation reads or writes it yet; it is kept for the planned food catalog.
type FoodItem struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	CaloriesPerServing int     `json:"calories_per_serving"`
	ServingUnit        string  `json:"serving_unit"`
}

// MealItem links a meal to a catalog entry with a quantity. Unused, see FoodItem.
type MealItem struct {
	ID         int64   `json:"id"`
	MealID     int64   `json:"meal_id"`
	FoodItemID int64   `json:"food_item_id"`
	Quantity   float64 `json:"quantity"`
}
