package models

import "time"

// User represents a registered account. The two credential hashes are
// never serialized to clients.
type User struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	SecretKeyHash string    `json:"-"`
	Bio           string    `json:"bio"`
	ProfileImage  string    `json:"profileImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
