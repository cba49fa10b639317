package dto

import (
	"testing"
	"time"

	"github.com/studyhallapp/studyhall-server/internal/domain"
)

func TestFormatUser(t *testing.T) {
	created := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	u := &domain.User{
		ID:           12,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$secret",
		CreatedAt:    created,
	}

	got := FormatUser(u)

	if got.ID != "12" {
		t.Errorf("ID = %q, want \"12\"", got.ID)
	}
	if got.CreatedAt != "2026-03-15T09:30:00Z" {
		t.Errorf("CreatedAt = %q, want RFC 3339 UTC", got.CreatedAt)
	}
}

func TestFormatTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	e := &domain.Event{
		ID:        1,
		Title:     "Lecture",
		StartTime: time.Date(2026, 9, 1, 16, 0, 0, 0, loc),
		EndTime:   time.Date(2026, 9, 1, 18, 0, 0, 0, loc),
		UserID:    2,
	}

	got := FormatEvent(e)

	if got.StartTime != "2026-09-01T14:00:00Z" {
		t.Errorf("StartTime = %q, want UTC rendering", got.StartTime)
	}
	if got.EndTime != "2026-09-01T16:00:00Z" {
		t.Errorf("EndTime = %q, want UTC rendering", got.EndTime)
	}
}

func TestFormatEvent_AssignmentIDsNeverNil(t *testing.T) {
	e := &domain.Event{
		ID:        1,
		Title:     "Empty",
		StartTime: time.Now(),
		EndTime:   time.Now(),
		UserID:    2,
	}

	got := FormatEvent(e)
	if got.AssignmentIDs == nil {
		t.Error("AssignmentIDs should be an empty slice, not nil")
	}

	e.AssignmentIDs = []int64{7, 8}
	got = FormatEvent(e)
	if len(got.AssignmentIDs) != 2 || got.AssignmentIDs[0] != "7" || got.AssignmentIDs[1] != "8" {
		t.Errorf("AssignmentIDs = %v, want [7 8] as strings", got.AssignmentIDs)
	}
}

func TestFormatAssignment_OptionalFields(t *testing.T) {
	a := &domain.Assignment{
		ID:     3,
		Title:  "Essay",
		Status: "todo",
		UserID: 2,
	}

	got := FormatAssignment(a)
	if got.DueDate != "" {
		t.Errorf("nil due date should render empty, got %q", got.DueDate)
	}
	if got.EventID != "" || got.CategoryID != "" {
		t.Errorf("nil references should render empty, got event=%q category=%q", got.EventID, got.CategoryID)
	}

	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	eventID := int64(9)
	a.DueDate = &due
	a.EventID = &eventID

	got = FormatAssignment(a)
	if got.DueDate != "2026-10-01T12:00:00Z" {
		t.Errorf("DueDate = %q", got.DueDate)
	}
	if got.EventID != "9" {
		t.Errorf("EventID = %q, want \"9\"", got.EventID)
	}
}

func TestFormatTopic_CarriesCardsCount(t *testing.T) {
	topic := &domain.FlashcardTopic{
		ID:         5,
		Title:      "Verbs",
		UserID:     2,
		CardsCount: 17,
	}

	got := FormatTopic(topic)
	if got.CardsCount != 17 {
		t.Errorf("CardsCount = %d, want 17", got.CardsCount)
	}
	if got.CategoryID != "" {
		t.Errorf("nil category should render empty, got %q", got.CategoryID)
	}
}

func TestFormatLists_EmptyNeverNil(t *testing.T) {
	if FormatCategories(nil) == nil {
		t.Error("FormatCategories(nil) should be an empty slice")
	}
	if FormatEvents(nil) == nil {
		t.Error("FormatEvents(nil) should be an empty slice")
	}
	if FormatAssignments(nil) == nil {
		t.Error("FormatAssignments(nil) should be an empty slice")
	}
	if FormatTodos(nil) == nil {
		t.Error("FormatTodos(nil) should be an empty slice")
	}
	if FormatTopics(nil) == nil {
		t.Error("FormatTopics(nil) should be an empty slice")
	}
	if FormatFlashcards(nil) == nil {
		t.Error("FormatFlashcards(nil) should be an empty slice")
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	f := &domain.Flashcard{
		ID:       1,
		Front:    "ser",
		Back:     "to be",
		TopicID:  2,
		Favorite: true,
		UserID:   3,
	}

	if FormatFlashcard(f) != FormatFlashcard(f) {
		t.Error("formatting the same row twice should be identical")
	}
}
