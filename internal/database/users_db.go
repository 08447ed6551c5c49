package database

import (
	"database/sql"

	"github.com/taskvault/app/internal/models"
)

// UserStore persists user records in the users table. Lookups that
// match no row return sql.ErrNoRows.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. Credential hashing happens in the auth
// service; this layer only stores the hashes it is given.
func (s *UserStore) Create(fullName, email, passwordHash, secretKeyHash string) (*models.User, error) {
	stmt, err := s.db.Prepare("INSERT INTO users(full_name, email, password_hash, secret_key_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(fullName, email, passwordHash, secretKeyHash)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Retrieve the user so DB defaults (bio, timestamps) are populated.
	return s.GetByID(id)
}

// GetByEmail retrieves a user by email address.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	return s.scanOne("SELECT id, full_name, email, password_hash, secret_key_hash, bio, profile_image, created_at, updated_at FROM users WHERE email = ?", email)
}

// GetByID retrieves a user by id.
func (s *UserStore) GetByID(id int64) (*models.User, error) {
	return s.scanOne("SELECT id, full_name, email, password_hash, secret_key_hash, bio, profile_image, created_at, updated_at FROM users WHERE id = ?", id)
}

func (s *UserStore) scanOne(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	row := s.db.QueryRow(query, arg)
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.SecretKeyHash, &user.Bio, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err // This will include sql.ErrNoRows if not found
	}
	return user, nil
}

// UpdatePassword overwrites the stored password hash.
func (s *UserStore) UpdatePassword(id int64, passwordHash string) error {
	return s.updateField("UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", passwordHash, id)
}

// UpdateBio overwrites the bio field.
func (s *UserStore) UpdateBio(id int64, bio string) error {
	return s.updateField("UPDATE users SET bio = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", bio, id)
}

// UpdateProfileImage overwrites the profile image URL.
func (s *UserStore) UpdateProfileImage(id int64, imageURL string) error {
	return s.updateField("UPDATE users SET profile_image = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", imageURL, id)
}

// updateField runs a single-column update and reports sql.ErrNoRows
// when the id matches no user, so callers can map it to a not-found.
func (s *UserStore) updateField(query string, value interface{}, id int64) error {
	res, err := s.db.Exec(query, value, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
