package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// topicColumns selects topic fields plus the card count, computed with a
// join at read time rather than maintained incrementally. Must match the
// scan order in scanTopic.
const topicColumns = `t.id, t.title, t.description, t.category_id, t.color,
	t.user_id, COUNT(f.id)`

const topicFrom = ` FROM flashcard_topics t LEFT JOIN flashcards f ON f.topic_id = t.id `

func scanTopic(scanner interface{ Scan(dest ...any) error }) (*domain.FlashcardTopic, error) {
	var t domain.FlashcardTopic
	var categoryID sql.NullInt64

	err := scanner.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&categoryID,
		&t.Color,
		&t.UserID,
		&t.CardsCount,
	)
	if err != nil {
		return nil, err
	}
	t.CategoryID = idPtr(categoryID)

	return &t, nil
}

// ListTopicsByUser returns all flashcard topics owned by a user with their
// card counts.
func (s *Store) ListTopicsByUser(ctx context.Context, userID int64) ([]*domain.FlashcardTopic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+topicColumns+topicFrom+`
		 WHERE t.user_id = ?
		 GROUP BY t.id
		 ORDER BY t.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []*domain.FlashcardTopic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// GetTopic returns a flashcard topic by id, or store.ErrNotFound.
func (s *Store) GetTopic(ctx context.Context, id int64) (*domain.FlashcardTopic, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+topicColumns+topicFrom+` WHERE t.id = ? GROUP BY t.id`, id)

	t, err := scanTopic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("flashcard topic not found")
		}
		return nil, err
	}
	return t, nil
}

// CreateTopic inserts a new flashcard topic and returns it with its
// assigned id. A fresh topic always has zero cards.
func (s *Store) CreateTopic(ctx context.Context, t *domain.FlashcardTopic) (*domain.FlashcardTopic, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO flashcard_topics (title, description, category_id, color, user_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, title, description, category_id, color, user_id, 0`,
		t.Title,
		t.Description,
		nullableID(t.CategoryID),
		t.Color,
		t.UserID,
	)
	return scanTopic(row)
}

// UpdateTopic replaces a topic's fields. Returns store.ErrNotFound for a
// missing id. Ownership is checked by the handler before calling this.
func (s *Store) UpdateTopic(ctx context.Context, id int64, t *domain.FlashcardTopic) error {
	return s.execExpectingRow(ctx, `
		UPDATE flashcard_topics
		SET title = ?, description = ?, category_id = ?, color = ?
		WHERE id = ?`,
		t.Title,
		t.Description,
		nullableID(t.CategoryID),
		t.Color,
		id,
	)
}

// DeleteTopic hard-deletes a topic. Its flashcards are removed with it via
// ON DELETE CASCADE.
func (s *Store) DeleteTopic(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM flashcard_topics WHERE id = ?`, id)
}
