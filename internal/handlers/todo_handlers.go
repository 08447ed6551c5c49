package handlers

import (
	"net/http"

	"github.com/taskvault/app/internal/models"
	"github.com/taskvault/app/internal/todo"
)

// TodoHandlers exposes owner-scoped task CRUD over HTTP. All routes run
// behind the auth gate; the owning user id always comes from the
// session context, never from the body.
type TodoHandlers struct {
	todos *todo.Service
}

func NewTodoHandlers(svc *todo.Service) *TodoHandlers {
	return &TodoHandlers{todos: svc}
}

type addTodoRequest struct {
	Title string `json:"title"`
}

type editTodoRequest struct {
	TodoID    int64  `json:"todoId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type deleteTodoRequest struct {
	TodoID int64 `json:"todoId"`
}

// Add creates a task for the caller.
func (h *TodoHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	var req addTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.todos.Add(userID, req.Title); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "New task added successfully")
}

// Edit overwrites the title and completed flag of the caller's task.
func (h *TodoHandlers) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	var req editTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.todos.Edit(userID, req.TodoID, req.Title, req.Completed); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Task edited successfully")
}

// Delete removes the caller's task.
func (h *TodoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	var req deleteTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.todos.Delete(userID, req.TodoID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, true, "Task deleted successfully")
}

// List returns every task owned by the caller.
func (h *TodoHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
		return
	}

	todos, err := h.todos.List(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Success bool          `json:"success"`
		Todos   []models.Todo `json:"todos"`
	}{true, todos})
}
