package database

import (
	"database/sql"

	"github.com/taskvault/app/internal/models"
)

// TodoStore persists task records in the todos table.
type TodoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

// Create inserts a new todo for the given user with completed=false.
func (s *TodoStore) Create(userID int64, title string) (*models.Todo, error) {
	stmt, err := s.db.Prepare("INSERT INTO todos(title, completed, user_id) VALUES(?, 0, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(title, userID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// GetByID retrieves a todo by id.
func (s *TodoStore) GetByID(id int64) (*models.Todo, error) {
	todo := &models.Todo{}
	row := s.db.QueryRow("SELECT id, title, completed, user_id, created_at, updated_at FROM todos WHERE id = ?", id)
	err := row.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err // This will include sql.ErrNoRows if not found
	}
	return todo, nil
}

// Update overwrites the title and completed flag of a todo.
func (s *TodoStore) Update(id int64, title string, completed bool) error {
	res, err := s.db.Exec("UPDATE todos SET title = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", title, completed, id)
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

// Delete permanently removes a todo.
func (s *TodoStore) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM todos WHERE id = ?", id)
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

// ListByUser retrieves all todos owned by a user in insertion order.
func (s *TodoStore) ListByUser(userID int64) ([]models.Todo, error) {
	rows, err := s.db.Query("SELECT id, title, completed, user_id, created_at, updated_at FROM todos WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		err := rows.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
