package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// assignmentColumns is the ordered list of columns selected in assignment
// queries. Must match the scan order in scanAssignment.
const assignmentColumns = `id, title, description, due_date, completed, status,
	event_id, category_id, user_id`

func scanAssignment(scanner interface{ Scan(dest ...any) error }) (*domain.Assignment, error) {
	var a domain.Assignment
	var (
		dueDate    sql.NullString
		completed  int
		eventID    sql.NullInt64
		categoryID sql.NullInt64
	)

	err := scanner.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&dueDate,
		&completed,
		&a.Status,
		&eventID,
		&categoryID,
		&a.UserID,
	)
	if err != nil {
		return nil, err
	}

	a.DueDate, err = parseNullableTime(dueDate)
	if err != nil {
		return nil, err
	}
	a.Completed = completed != 0
	a.EventID = idPtr(eventID)
	a.CategoryID = idPtr(categoryID)

	return &a, nil
}

// ListAssignmentsByUser returns all assignments owned by a user.
func (s *Store) ListAssignmentsByUser(ctx context.Context, userID int64) ([]*domain.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []*domain.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetAssignment returns an assignment by id, or store.ErrNotFound.
func (s *Store) GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = ?`, id)

	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("assignment not found")
		}
		return nil, err
	}
	return a, nil
}

// CreateAssignment inserts a new assignment and returns it with its
// assigned id. The category reference is persisted like every other field.
func (s *Store) CreateAssignment(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO assignments (title, description, due_date, completed, status, event_id, category_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+assignmentColumns,
		a.Title,
		a.Description,
		nullTimeString(a.DueDate),
		boolToInt(a.Completed),
		a.Status,
		nullableID(a.EventID),
		nullableID(a.CategoryID),
		a.UserID,
	)
	return scanAssignment(row)
}

// UpdateAssignment replaces every mutable field of an assignment. Returns
// store.ErrNotFound for a missing id.
func (s *Store) UpdateAssignment(ctx context.Context, id int64, a *domain.Assignment) error {
	return s.execExpectingRow(ctx, `
		UPDATE assignments
		SET title = ?, description = ?, due_date = ?, completed = ?, status = ?, event_id = ?, category_id = ?
		WHERE id = ?`,
		a.Title,
		a.Description,
		nullTimeString(a.DueDate),
		boolToInt(a.Completed),
		a.Status,
		nullableID(a.EventID),
		nullableID(a.CategoryID),
		id,
	)
}

// UpdateAssignmentStatus is the narrow kanban drag-and-drop path: it
// touches only the status and completed columns. Returns store.ErrNotFound
// for a missing id.
func (s *Store) UpdateAssignmentStatus(ctx context.Context, id int64, status string, completed bool) error {
	return s.execExpectingRow(ctx,
		`UPDATE assignments SET status = ?, completed = ? WHERE id = ?`,
		status, boolToInt(completed), id)
}

// DeleteAssignment hard-deletes an assignment.
func (s *Store) DeleteAssignment(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM assignments WHERE id = ?`, id)
}
