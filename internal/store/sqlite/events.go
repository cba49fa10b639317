package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// eventColumns selects event fields plus the ids of linked assignments,
// aggregated at read time (there is no stored counter to keep in sync).
// Must match the scan order in scanEvent.
const eventColumns = `e.id, e.title, e.start_time, e.end_time, e.category_id,
	e.user_id, e.location, e.description,
	COALESCE(GROUP_CONCAT(a.id), '')`

const eventFrom = ` FROM events e LEFT JOIN assignments a ON a.event_id = e.id `

func scanEvent(scanner interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	var e domain.Event
	var (
		startTime     string
		endTime       string
		categoryID    sql.NullInt64
		assignmentIDs string
	)

	err := scanner.Scan(
		&e.ID,
		&e.Title,
		&startTime,
		&endTime,
		&categoryID,
		&e.UserID,
		&e.Location,
		&e.Description,
		&assignmentIDs,
	)
	if err != nil {
		return nil, err
	}

	e.StartTime, err = parseTime(startTime)
	if err != nil {
		return nil, err
	}
	e.EndTime, err = parseTime(endTime)
	if err != nil {
		return nil, err
	}
	e.CategoryID = idPtr(categoryID)

	e.AssignmentIDs = []int64{}
	if assignmentIDs != "" {
		for part := range strings.SplitSeq(assignmentIDs, ",") {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, err
			}
			e.AssignmentIDs = append(e.AssignmentIDs, id)
		}
	}

	return &e, nil
}

// ListEventsByUser returns all events owned by a user, earliest first.
func (s *Store) ListEventsByUser(ctx context.Context, userID int64) ([]*domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+eventFrom+`
		 WHERE e.user_id = ?
		 GROUP BY e.id
		 ORDER BY e.start_time, e.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns an event by id, or store.ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+eventFrom+` WHERE e.id = ? GROUP BY e.id`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound.WithMessage("event not found")
		}
		return nil, err
	}
	return e, nil
}

// CreateEvent inserts a new event and returns it with its assigned id.
// Start/end ordering is intentionally not validated here.
func (s *Store) CreateEvent(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO events (title, start_time, end_time, category_id, user_id, location, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, title, start_time, end_time, category_id, user_id, location, description, ''`,
		ev.Title,
		formatTime(ev.StartTime),
		formatTime(ev.EndTime),
		nullableID(ev.CategoryID),
		ev.UserID,
		ev.Location,
		ev.Description,
	)
	return scanEvent(row)
}

// UpdateEvent replaces an event's fields. Returns store.ErrNotFound for a
// missing id.
func (s *Store) UpdateEvent(ctx context.Context, id int64, ev *domain.Event) error {
	return s.execExpectingRow(ctx, `
		UPDATE events
		SET title = ?, start_time = ?, end_time = ?, category_id = ?, location = ?, description = ?
		WHERE id = ?`,
		ev.Title,
		formatTime(ev.StartTime),
		formatTime(ev.EndTime),
		nullableID(ev.CategoryID),
		ev.Location,
		ev.Description,
		id,
	)
}

// DeleteEvent hard-deletes an event. Assignments linked to it keep existing
// with event_id nulled by the schema.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, `DELETE FROM events WHERE id = ?`, id)
}
