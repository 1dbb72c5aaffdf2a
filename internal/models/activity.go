// ABOUTME: Activity model for daily to-do style items with a completion flag.
// ABOUTME: Activities start incomplete and are flipped done by user interaction.
package models

// Activity represents a daily activity that can be marked complete.
type Activity struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"` // YYYY-MM-DD, local calendar day
}

// NewActivity creates an incomplete Activity dated to the given day. The ID is
// assigned by the storage backend on insert.
func NewActivity(name, date string) *Activity {
	return &Activity{
		Name: name,
		Date: date,
	}
}
