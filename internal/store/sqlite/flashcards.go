package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// flashcardColumns is the ordered list of columns selected in flashcard
// queries. Must match the scan order in scanFlashcard.
const flashcardColumns = `id, front, back, topic_id, category_id, favorite, user_id`

func scanFlashcard(scanner interface{ Scan(dest ...any) error }) (*domain.Flashcard, error) {
	var f domain.Flashcard
	var (
		categoryID sql.NullInt64
		favorite   int
	)

	err := scanner.Scan(
		&f.ID,
		&f.Front,
		&f.Back,
		&f.TopicID,
		&categoryID,
		&favorite,
		&f.UserID,
	)
	if err != nil {
		return nil, err
	}
	f.CategoryID = idPtr(categoryID)
	f.Favorite = favorite != 0

	return &f, nil
}

// ListFlashcardsByUser returns all flashcards owned by a user.
func (s *Store) ListFlashcardsByUser(ctx context.Context, userID int64) ([]*domain.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+flashcardColumns+` FROM flashcards WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFlashcards(rows)
}

// ListFlashcardsByTopic returns all flashcards inside one topic.
func (s *Store) ListFlashcardsByTopic(ctx context.Context, topicID int64) ([]*domain.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+flashcardColumns+` FROM flashcards WHERE topic_id = ? ORDER BY id`, topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFlashcards(rows)
}

func collectFlashcards(rows *sql.Rows) ([]*domain.Flashcard, error) {
	flashcards := []*domain.Flashcard{}
	for rows.Next() {
		f, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		flashcards = append(flashcards, f)
	}
	return flashcards, rows.Err()
}

// GetFlashcard returns a flashcard by id, or store.ErrNotFound.
func (s *Store) GetFlashcard(ctx context.Context, id int64) (*domain.Flashcard, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+flashcardColumns+` FROM flashcards WHERE id = ?`, id)

	f, err := scanFlashcard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("flashcard not found")
		}
		return nil, err
	}
	return f, nil
}

// CreateFlashcard inserts a new flashcard and returns it with its assigned id.
func (s *Store) CreateFlashcard(ctx context.Context, f *domain.Flashcard) (*domain.Flashcard, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO flashcards (front, back, topic_id, category_id, favorite, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+flashcardColumns,
		f.Front,
		f.Back,
		f.TopicID,
		nullableID(f.CategoryID),
		boolToInt(f.Favorite),
		f.UserID,
	)
	return scanFlashcard(row)
}

// UpdateFlashcard replaces a flashcard's front, back, and favorite flag.
// Returns store.ErrNotFound for a missing id.
func (s *Store) UpdateFlashcard(ctx context.Context, id int64, front, back string, favorite bool) error {
	return s.execExpectingRow(ctx,
		`UPDATE flashcards SET front = ?, back = ?, favorite = ? WHERE id = ?`,
		front, back, boolToInt(favorite), id)
}

// UpdateFlashcardFavorite is the narrow path that touches only the favorite
// flag. Returns store.ErrNotFound for a missing id.
func (s *Store) UpdateFlashcardFavorite(ctx context.Context, id int64, favorite bool) error {
	return s.execExpectingRow(ctx,
		`UPDATE flashcards SET favorite = ? WHERE id = ?`,
		boolToInt(favorite), id)
}

// DeleteFlashcard hard-deletes a flashcard.
func (s *Store) DeleteFlashcard(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
}
