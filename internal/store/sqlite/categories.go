package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// categoryColumns is the ordered list of columns selected in category
// queries. Must match the scan order in scanCategory.
const categoryColumns = `id, name, color, user_id`

func scanCategory(scanner interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category
	err := scanner.Scan(&c.ID, &c.Name, &c.Color, &c.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategoriesByUser returns all categories owned by a user.
func (s *Store) ListCategoriesByUser(ctx context.Context, userID int64) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory returns a category by id, or store.ErrNotFound.
func (s *Store) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("category not found")
		}
		return nil, err
	}
	return c, nil
}

// CreateCategory inserts a new category and returns it with its assigned id.
func (s *Store) CreateCategory(ctx context.Context, name, color string, userID int64) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, color, user_id)
		VALUES (?, ?, ?)
		RETURNING `+categoryColumns,
		name, color, userID,
	)
	return scanCategory(row)
}

// UpdateCategory replaces a category's fields. Returns store.ErrNotFound
// for a missing id.
func (s *Store) UpdateCategory(ctx context.Context, id int64, name, color string) error {
	return s.execExpectingRow(ctx,
		`UPDATE categories SET name = ?, color = ? WHERE id = ?`, name, color, id)
}

// DeleteCategory hard-deletes a category. Rows referencing it get their
// category_id set to null by the schema's foreign-key action.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM categories WHERE id = ?`, id)
}
