// ABOUTME: Tests for the session key-value store.
// ABOUTME: Verifies get/set/remove semantics and the current-user helpers.
package session

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.json"))
}

func TestGetMissingKey(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false for a missing key")
	}
}

func TestSetGetRemove(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set("k", []byte(`"v1"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// Last write wins.
	if err := s.Set("k", []byte(`"v2"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || string(val) != `"v2"` {
		t.Errorf("Get = %q ok=%v, want \"v2\" true", val, ok)
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("expected key gone after Remove")
	}

	// Removing again is fine.
	if err := s.Remove("k"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestCurrentUserRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	if _, ok, err := s.GetCurrentUser(); err != nil || ok {
		t.Fatalf("expected no session user, got ok=%v err=%v", ok, err)
	}

	u := &CurrentUser{
		UserID:      3,
		Username:    "alice",
		DisplayName: "Alice",
		Token:       "0f8fad5b-d9cb-469f-a165-70867728950e",
		LoggedInAt:  time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := s.SetCurrentUser(u); err != nil {
		t.Fatalf("SetCurrentUser failed: %v", err)
	}

	got, ok, err := s.GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if !ok || got.Username != "alice" || got.UserID != 3 {
		t.Errorf("GetCurrentUser = %+v ok=%v", got, ok)
	}

	if err := s.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser failed: %v", err)
	}
	if _, ok, _ := s.GetCurrentUser(); ok {
		t.Error("expected session cleared")
	}
}
