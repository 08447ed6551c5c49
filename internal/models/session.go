package models

import "time"

// Session binds an opaque client-held token to an authenticated user id.
// A session past its expiry is treated as nonexistent.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}
