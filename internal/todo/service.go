// Package todo implements owner-scoped task operations. Every mutation
// verifies that the authenticated caller owns the record before acting.
package todo

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/taskvault/app/internal/apperr"
	"github.com/taskvault/app/internal/models"
)

// Store is the persistence port for task records. Lookups that match
// nothing return sql.ErrNoRows.
type Store interface {
	Create(userID int64, title string) (*models.Todo, error)
	GetByID(id int64) (*models.Todo, error)
	Update(id int64, title string, completed bool) error
	Delete(id int64) error
	ListByUser(userID int64) ([]models.Todo, error)
}

type Service struct {
	todos Store
}

func NewService(todos Store) *Service {
	return &Service{todos: todos}
}

// Add creates a new task for the user with completed=false.
func (s *Service) Add(userID int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperr.E(apperr.Validation, "Please fill in the task title.")
	}
	if _, err := s.todos.Create(userID, title); err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}

// Edit overwrites the title and completed flag of the caller's task. A
// task owned by someone else reports the same not-found as a missing
// one, so ids cannot be probed across accounts.
func (s *Service) Edit(userID, todoID int64, title string, completed bool) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperr.E(apperr.Validation, "Please fill in the task.")
	}

	if err := s.owned(userID, todoID); err != nil {
		return err
	}
	if err := s.todos.Update(todoID, title, completed); err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}

// Delete permanently removes the caller's task.
func (s *Service) Delete(userID, todoID int64) error {
	if err := s.owned(userID, todoID); err != nil {
		return err
	}
	if err := s.todos.Delete(todoID); err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return nil
}

// List returns every task owned by the user in insertion order.
func (s *Service) List(userID int64) ([]models.Todo, error) {
	todos, err := s.todos.ListByUser(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return todos, nil
}

func (s *Service) owned(userID, todoID int64) error {
	t, err := s.todos.GetByID(todoID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.E(apperr.NotFound, "Task not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	if t.UserID != userID {
		return apperr.E(apperr.NotFound, "Task not found")
	}
	return nil
}
