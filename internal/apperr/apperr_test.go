package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindAndStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
	}{
		{"validation", E(Validation, "Missing details"), Validation, http.StatusBadRequest},
		{"conflict", E(Conflict, "User already exists"), Conflict, http.StatusBadRequest},
		{"not found", E(NotFound, "User not found"), NotFound, http.StatusBadRequest},
		{"unauthorized", E(Unauthorized, "Unauthorized"), Unauthorized, http.StatusUnauthorized},
		{"internal", Wrap(Internal, "Logout failed", errors.New("disk full")), Internal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
			if got := HTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("HTTPStatus() = %v, want %v", got, tt.wantStatus)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(E(NotFound, "User not found")); got != "User not found" {
		t.Errorf("Message() = %q, want %q", got, "User not found")
	}
	// Wrapped business errors still surface through fmt wrapping.
	wrapped := fmt.Errorf("handler: %w", E(Conflict, "User already exists"))
	if got := Message(wrapped); got != "User already exists" {
		t.Errorf("Message(wrapped) = %q, want %q", got, "User already exists")
	}
	// Unclassified errors never leak their text.
	if got := Message(errors.New("connection refused")); got != "Internal server error" {
		t.Errorf("Message(plain) = %q, want %q", got, "Internal server error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("constraint failed")
	err := Wrap(Internal, "could not create user", cause)
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() did not find the wrapped cause")
	}
}
