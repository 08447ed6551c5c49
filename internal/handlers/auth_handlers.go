package handlers

import (
	"net/http"
	"time"

	"github.com/taskvault/app/internal/auth"
	"github.com/taskvault/app/internal/models"
)

// AuthHandlers exposes the account and session lifecycle over HTTP.
type AuthHandlers struct {
	auth *auth.Service
}

func NewAuthHandlers(svc *auth.Service) *AuthHandlers {
	return &AuthHandlers{auth: svc}
}

type registerRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyKeyRequest struct {
	Email string `json:"email"`
	Key   string `json:"key"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type updateBioRequest struct {
	NewBio string `json:"newbio"`
}

type updateProfileRequest struct {
	ImageURL string `json:"imageUrl"`
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register creates an account and logs the new user straight in.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	sess, err := h.auth.Register(req.FullName, req.Email, req.Password, req.SecretKey)
	if err != nil {
		respondError(w, err)
		return
	}

	setSessionCookie(w, r, sess)
	respondMessage(w, http.StatusOK, true, "Account created successfully")
}

// Login authenticates and opens a session.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	sess, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	setSessionCookie(w, r, sess)
	respondMessage(w, http.StatusOK, true, "Logged in successfully")
}

// Logout destroys the current session and clears the cookie. It
// succeeds even when no session exists.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.auth.Logout(token); err != nil {
		respondError(w, err)
		return
	}

	clearSessionCookie(w, r)
	respondMessage(w, http.StatusOK, true, "Logged out")
}

// IsAuthenticated runs behind the gate; reaching it means the session
// is valid.
func (h *AuthHandlers) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, apiResponse{Success: true})
}

// VerifySecretKey checks the recovery key without performing a reset.
func (h *AuthHandlers) VerifySecretKey(w http.ResponseWriter, r *http.Request) {
	var req verifyKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.auth.VerifySecretKey(req.Email, req.Key); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Secret key is valid")
}

// ResetPassword overwrites the account password.
func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.auth.ResetPassword(req.Email, req.NewPassword); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Password has been reset successfully")
}

// UserData returns the caller's profile. Credential hashes are never
// serialized.
func (h *AuthHandlers) UserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	user, err := h.auth.UserData(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Success  bool         `json:"success"`
		UserData *models.User `json:"userData"`
	}{true, user})
}

// UpdateBio overwrites the caller's bio.
func (h *AuthHandlers) UpdateBio(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	var req updateBioRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.auth.UpdateBio(userID, req.NewBio); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Bio updated successfully")
}

// UpdateProfile persists an uploaded image URL on the caller's profile.
// The target is always the session user; a userId in the body is
// ignored.
func (h *AuthHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.auth.UpdateProfileImage(userID, req.ImageURL); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Profile image updated successfully")
}
