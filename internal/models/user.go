// ABOUTME: User model for local signup/login.
// ABOUTME: Password holds a bcrypt hash; the cleartext never touches disk.
package models

import "time"

// User represents a local account.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"` // bcrypt hash
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
