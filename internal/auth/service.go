// Package auth implements the account and session lifecycle: register,
// login, logout, secret-key verification, password reset, and profile
// updates. Stores are injected so tests can run against in-memory
// databases.
package auth

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/app/internal/apperr"
	"github.com/taskvault/app/internal/models"
	"github.com/taskvault/app/internal/validate"
)

// SessionTTL is the fixed lifetime of a session and its cookie.
const SessionTTL = 7 * 24 * time.Hour

const bcryptCost = 10

const passwordStrengthMessage = "Password must have at least 8 characters with at least one letter and one number"

// UserStore is the persistence port for user records. Lookups that
// match nothing return sql.ErrNoRows.
type UserStore interface {
	Create(fullName, email, passwordHash, secretKeyHash string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int64) (*models.User, error)
	UpdatePassword(id int64, passwordHash string) error
	UpdateBio(id int64, bio string) error
	UpdateProfileImage(id int64, imageURL string) error
}

// SessionStore is the persistence port for server-side sessions.
type SessionStore interface {
	Create(userID int64, ttl time.Duration) (*models.Session, error)
	Get(token string) (*models.Session, error)
	Delete(token string) error
}

type Service struct {
	users    UserStore
	sessions SessionStore
}

func NewService(users UserStore, sessions SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

// normalizeEmail matches the original storage rule: emails are unique
// case-insensitively, so they are trimmed and lowercased on every path.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the four credentials, creates the user with both
// secrets hashed independently, and opens a session for the new account.
func (s *Service) Register(fullName, email, password, secretKey string) (*models.Session, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)

	if fullName == "" || email == "" || password == "" || secretKey == "" {
		return nil, apperr.E(apperr.Validation, "Please fill all the required fields")
	}
	if !validate.IsValidEmail(email) {
		return nil, apperr.E(apperr.Validation, "Invalid email format")
	}
	if !validate.IsValidPassword(password) {
		return nil, apperr.E(apperr.Validation, passwordStrengthMessage)
	}

	_, err := s.users.GetByEmail(email)
	if err == nil {
		return nil, apperr.E(apperr.Conflict, "User already exists")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	keyHash, err := bcrypt.GenerateFromPassword([]byte(secretKey), bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	user, err := s.users.Create(fullName, email, string(passwordHash), string(keyHash))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	sess, err := s.sessions.Create(user.ID, SessionTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return sess, nil
}

// Login checks the credentials and opens a session. An unknown email
// and a wrong password produce the identical generic failure so the
// response does not reveal which one was wrong.
func (s *Service) Login(email, password string) (*models.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.E(apperr.Validation, "Please fill all the required fields")
	}

	user, err := s.users.GetByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.E(apperr.NotFound, "Invalid credentials")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.E(apperr.NotFound, "Invalid credentials")
	}

	sess, err := s.sessions.Create(user.ID, SessionTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return sess, nil
}

// Logout destroys the session behind the token. A token that no longer
// resolves is not an error; only a store failure is.
func (s *Service) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(token); err != nil {
		return apperr.Wrap(apperr.Internal, "Logout failed", err)
	}
	return nil
}

// UserIDForToken resolves a session token to its user id. It backs the
// auth gate middleware.
func (s *Service) UserIDForToken(token string) (int64, error) {
	sess, err := s.sessions.Get(token)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperr.E(apperr.Unauthorized, "Unauthorized")
	}
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return sess.UserID, nil
}

// VerifySecretKey checks the recovery key for an account. This is a
// standalone check; it does not authorize or perform a reset.
func (s *Service) VerifySecretKey(email, key string) error {
	email = normalizeEmail(email)
	if email == "" || key == "" {
		return apperr.E(apperr.Validation, "Missing details")
	}

	user, err := s.users.GetByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SecretKeyHash), []byte(key)) != nil {
		return apperr.E(apperr.Validation, "Invalid key")
	}
	return nil
}

// ResetPassword overwrites the password for the account behind email.
// It deliberately does not re-check the secret key; verification and
// reset are two independent calls in the public API.
func (s *Service) ResetPassword(email, newPassword string) error {
	email = normalizeEmail(email)
	if email == "" || newPassword == "" {
		return apperr.E(apperr.Validation, "Missing details")
	}

	user, err := s.users.GetByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}

	if !validate.IsValidPassword(newPassword) {
		return apperr.E(apperr.Validation, passwordStrengthMessage)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	if err := s.users.UpdatePassword(user.ID, string(hash)); err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}

// UserData returns the profile record for a user. Credential hashes are
// excluded from serialization by the model's JSON tags.
func (s *Service) UserData(userID int64) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return user, nil
}

// UpdateBio overwrites the user's bio.
func (s *Service) UpdateBio(userID int64, newBio string) error {
	if strings.TrimSpace(newBio) == "" {
		return apperr.E(apperr.Validation, "Please fill in the bio.")
	}
	err := s.users.UpdateBio(userID, newBio)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}

// UpdateProfileImage overwrites the user's profile image URL. The URL
// comes from the upload pipeline; the two calls are not transactional.
func (s *Service) UpdateProfileImage(userID int64, imageURL string) error {
	err := s.users.UpdateProfileImage(userID, imageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.E(apperr.NotFound, "User not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}
