package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// todoColumns is the ordered list of columns selected in todo queries.
// Must match the scan order in scanTodo.
const todoColumns = `id, title, completed, priority, user_id`

func scanTodo(scanner interface{ Scan(dest ...any) error }) (*domain.Todo, error) {
	var t domain.Todo
	var completed int

	err := scanner.Scan(&t.ID, &t.Title, &completed, &t.Priority, &t.UserID)
	if err != nil {
		return nil, err
	}
	t.Completed = completed != 0

	return &t, nil
}

// ListTodosByUser returns all todos owned by a user.
func (s *Store) ListTodosByUser(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []*domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// GetTodo returns a todo by id, or store.ErrNotFound.
func (s *Store) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)

	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("todo not found")
		}
		return nil, err
	}
	return t, nil
}

// CreateTodo inserts a new todo and returns it with its assigned id.
func (s *Store) CreateTodo(ctx context.Context, title, priority string, userID int64) (*domain.Todo, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO todos (title, completed, priority, user_id)
		VALUES (?, 0, ?, ?)
		RETURNING `+todoColumns,
		title, priority, userID,
	)
	return scanTodo(row)
}

// UpdateTodo replaces a todo's fields. Returns store.ErrNotFound for a
// missing id.
func (s *Store) UpdateTodo(ctx context.Context, id int64, title string, completed bool, priority string) error {
	return s.execExpectingRow(ctx,
		`UPDATE todos SET title = ?, completed = ?, priority = ? WHERE id = ?`,
		title, boolToInt(completed), priority, id)
}

// DeleteTodo hard-deletes a todo.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM todos WHERE id = ?`, id)
}
