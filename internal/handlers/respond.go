package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/taskvault/app/internal/apperr"
)

// apiResponse is the uniform success/failure body every endpoint uses.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: encoding response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, success bool, message string) {
	respondJSON(w, status, apiResponse{Success: success, Message: message})
}

// respondError converts a business error into the uniform failure
// shape. Store and infra failures are logged here; their details never
// reach the client.
func respondError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		log.Printf("handlers: internal error: %v", err)
	}
	respondMessage(w, apperr.HTTPStatus(err), false, apperr.Message(err))
}

// decodeJSON fills dst from the request body. An empty body is left to
// the services' required-field checks rather than rejected here.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return apperr.E(apperr.Validation, "Invalid request body")
	}
	return nil
}
