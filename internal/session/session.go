// ABOUTME: Minimal persistent key-value store for session state.
// ABOUTME: Holds the current logged-in user under one well-known key.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CurrentUserKey is the well-known key holding the logged-in user record.
const CurrentUserKey = "current_user"

// CurrentUser is the serialized session payload for the logged-in user.
type CurrentUser struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Token       string    `json:"token"`
	LoggedInAt  time.Time `json:"logged_in_at"`
}

// Store is a tiny last-write-wins key-value file. No locking beyond the
// single-process assumption the rest of the tool already makes.
type Store struct {
	path string
}

// New creates a session store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file path under XDG config.
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthtrack", "session.json")
}

// Get returns the raw value for key, or ok=false when the key is absent.
func (s *Store) Get(key string) (value []byte, ok bool, err error) {
	entries, err := s.read()
	if err != nil {
		return nil, false, err
	}
	raw, ok := entries[key]
	return raw, ok, nil
}

// Set stores the value for key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.write(entries)
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.write(entries)
}

// GetCurrentUser decodes the logged-in user record, or ok=false when nobody
// is logged in.
func (s *Store) GetCurrentUser() (*CurrentUser, bool, error) {
	raw, ok, err := s.Get(CurrentUserKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var u CurrentUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false, fmt.Errorf("decode session user: %w", err)
	}
	return &u, true, nil
}

// SetCurrentUser stores the logged-in user record.
func (s *Store) SetCurrentUser(u *CurrentUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return s.Set(CurrentUserKey, data)
}

// ClearCurrentUser removes the logged-in user record.
func (s *Store) ClearCurrentUser() error {
	return s.Remove(CurrentUserKey)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read session store: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse session store: %w", err)
	}
	return entries, nil
}

func (s *Store) write(entries map[string]json.RawMessage) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize session store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session store: %w", err)
	}
	return nil
}
