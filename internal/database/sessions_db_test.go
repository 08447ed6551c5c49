package database

import (
	"database/sql"
	"testing"
	"time"
)

func TestCreateAndGetSession(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "session@example.com")
	store := NewSessionStore(db)

	sess, err := store.Create(user.ID, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sess.Token == "" {
		t.Errorf("Create() returned empty token")
	}
	if sess.UserID != user.ID {
		t.Errorf("Create() userID = %v, want %v", sess.UserID, user.ID)
	}

	got, err := store.Get(sess.Token)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UserID != user.ID {
		t.Errorf("Get() userID = %v, want %v", got.UserID, user.ID)
	}

	// Two sessions for the same user must get distinct tokens.
	other, err := store.Create(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("Create() second session error = %v", err)
	}
	if other.Token == sess.Token {
		t.Errorf("Create() reused a session token")
	}
}

func TestGetUnknownSession(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	store := NewSessionStore(db)
	if _, err := store.Get("no-such-token"); err != sql.ErrNoRows {
		t.Errorf("Get() for unknown token, got err = %v, want sql.ErrNoRows", err)
	}
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "expired@example.com")
	store := NewSessionStore(db)

	sess, err := store.Create(user.ID, -time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := store.Get(sess.Token); err != sql.ErrNoRows {
		t.Errorf("Get() for expired token, got err = %v, want sql.ErrNoRows", err)
	}

	// Lazy cleanup should have removed the row entirely.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sessions WHERE token = ?", sess.Token).Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 0 {
		t.Errorf("expired session row still present after Get()")
	}
}

func TestDeleteSession(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "logout@example.com")
	store := NewSessionStore(db)

	sess, err := store.Create(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(sess.Token); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(sess.Token); err != sql.ErrNoRows {
		t.Errorf("Get() after delete, got err = %v, want sql.ErrNoRows", err)
	}

	// Logout with no live session must still succeed.
	if err := store.Delete("no-such-token"); err != nil {
		t.Errorf("Delete() of unknown token error = %v, want nil", err)
	}
}

func TestDeleteExpired(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	user := createTestUser(t, db, "sweep@example.com")
	store := NewSessionStore(db)

	if _, err := store.Create(user.ID, -time.Minute); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(user.ID, -time.Second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	live, err := store.Create(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err := store.DeleteExpired()
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteExpired() swept %d sessions, want 2", n)
	}

	if _, err := store.Get(live.Token); err != nil {
		t.Errorf("Get() for live token after sweep error = %v", err)
	}
}
