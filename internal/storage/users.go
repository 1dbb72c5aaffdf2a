// ABOUTME: User signup and authentication for SQLite storage.
// ABOUTME: Hashes credentials with bcrypt; collapses auth failures to one error.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harperreed/healthtrack/internal/models"
)

// CreateUser registers a new user and returns the assigned id. The password
// arrives in cleartext and is stored as a bcrypt hash. A duplicate username
// fails with ErrUsernameTaken.
func (d *DB) CreateUser(username, password, displayName string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	res, err := d.db.Exec(
		"INSERT INTO users (username, password, display_name, created_at) VALUES (?, ?, ?, ?)",
		username, string(hash), displayName, d.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// AuthenticateUser returns the user record matching the given credentials.
// Unknown usernames and wrong passwords both fail with ErrInvalidCredentials
// so callers cannot tell which usernames exist.
func (d *DB) AuthenticateUser(username, password string) (*models.User, error) {
	var u models.User
	var createdAt string
	var displayName sql.NullString
	err := d.db.QueryRow(
		"SELECT id, username, password, display_name, created_at FROM users WHERE username = ? LIMIT 1",
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &displayName, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	u.DisplayName = displayName.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}
