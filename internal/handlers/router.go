package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter maps the public API surface onto the handlers. Protected
// routes run behind the session gate.
func NewRouter(authH *AuthHandlers, todoH *TodoHandlers, uploadH *UploadHandlers, sessions SessionResolver) *mux.Router {
	r := mux.NewRouter()
	gate := RequireAuth(sessions)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "API get working")
	}).Methods(http.MethodGet)

	authR := r.PathPrefix("/api/auth").Subrouter()
	authR.HandleFunc("/register", authH.Register).Methods(http.MethodPost)
	authR.HandleFunc("/login", authH.Login).Methods(http.MethodPost)
	authR.HandleFunc("/logout", authH.Logout).Methods(http.MethodPost)
	authR.Handle("/is-authenticated", gate(http.HandlerFunc(authH.IsAuthenticated))).Methods(http.MethodGet)
	authR.HandleFunc("/verify-key-reset", authH.VerifySecretKey).Methods(http.MethodPost)
	authR.HandleFunc("/reset-password", authH.ResetPassword).Methods(http.MethodPost)
	authR.Handle("/data", gate(http.HandlerFunc(authH.UserData))).Methods(http.MethodGet)
	authR.Handle("/update-bio", gate(http.HandlerFunc(authH.UpdateBio))).Methods(http.MethodPost)
	authR.HandleFunc("/upload-image", uploadH.UploadImage).Methods(http.MethodPost)
	authR.Handle("/update-profile", gate(http.HandlerFunc(authH.UpdateProfile))).Methods(http.MethodPost)

	todoR := r.PathPrefix("/api/todo").Subrouter()
	todoR.Handle("/add-todo", gate(http.HandlerFunc(todoH.Add))).Methods(http.MethodPost)
	todoR.Handle("/edit-todo", gate(http.HandlerFunc(todoH.Edit))).Methods(http.MethodPut)
	todoR.Handle("/delete-todo", gate(http.HandlerFunc(todoH.Delete))).Methods(http.MethodDelete)
	todoR.Handle("/get-todo", gate(http.HandlerFunc(todoH.List))).Methods(http.MethodGet)

	return r
}
