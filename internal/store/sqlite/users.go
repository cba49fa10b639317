package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// userColumns is the ordered list of columns selected in user queries.
// Must match the scan order in scanUser.
const userColumns = `id, name, email, password, created_at`

// scanUser scans a sql.Row (or sql.Rows via its Scan method) into a domain.User.
func scanUser(scanner interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User
	var createdAt string

	err := scanner.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateUser inserts a new user and returns it with its assigned id.
// Returns store.ErrAlreadyExists if the email is taken.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+userColumns,
		name, email, passwordHash, formatTime(time.Now()),
	)

	u, err := scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, store.ErrAlreadyExists.WithMessage("email already registered")
		}
		return nil, err
	}
	return u, nil
}

// GetUser returns a user by id, or store.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("user not found")
		}
		return nil, err
	}
	return u, nil
}

// GetUserByEmail returns a user by email, or store.ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("user not found")
		}
		return nil, err
	}
	return u, nil
}

// UpdateUserName renames a user. Returns store.ErrNotFound for a missing id.
func (s *Store) UpdateUserName(ctx context.Context, id int64, name string) error {
	return s.execExpectingRow(ctx,
		`UPDATE users SET name = ? WHERE id = ?`, name, id)
}

// DeleteUser hard-deletes a user. Everything the user owns goes with them
// via ON DELETE CASCADE.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM users WHERE id = ?`, id)
}
