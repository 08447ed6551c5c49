package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/taskvault/app/internal/models"
)

// SessionStore persists server-side sessions in the sessions table.
// Expired sessions are treated as nonexistent: Get deletes them lazily
// and DeleteExpired sweeps them in bulk.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create mints a new opaque token for the user, valid for ttl.
func (s *SessionStore) Create(userID int64, ttl time.Duration) (*models.Session, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(ttl)
	_, err = s.db.Exec("INSERT INTO sessions(token, user_id, expires_at) VALUES(?, ?, ?)",
		token.String(), userID, expiresAt.Unix())
	if err != nil {
		return nil, err
	}

	return &models.Session{Token: token.String(), UserID: userID, ExpiresAt: expiresAt}, nil
}

// Get resolves a token to its session. An expired token is deleted and
// reported as sql.ErrNoRows, same as a token that never existed.
func (s *SessionStore) Get(token string) (*models.Session, error) {
	var userID, expiresAt int64
	row := s.db.QueryRow("SELECT user_id, expires_at FROM sessions WHERE token = ?", token)
	if err := row.Scan(&userID, &expiresAt); err != nil {
		return nil, err
	}

	if time.Now().Unix() >= expiresAt {
		// Best-effort lazy cleanup; the sweeper catches anything missed.
		_, _ = s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
		return nil, sql.ErrNoRows
	}

	return &models.Session{Token: token, UserID: userID, ExpiresAt: time.Unix(expiresAt, 0)}, nil
}

// Delete destroys a session. Deleting a token that does not exist is
// not an error; logout must succeed even without a live session.
func (s *SessionStore) Delete(token string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

// DeleteExpired removes every session past its expiry and returns the
// number of rows swept.
func (s *SessionStore) DeleteExpired() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
