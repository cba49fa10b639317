package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/studyhallapp/studyhall-server/internal/domain"
	"github.com/studyhallapp/studyhall-server/internal/store"
)

// seedTopic creates a topic to hang flashcards off.
func seedTopic(t *testing.T, s *Store, userID int64) *domain.FlashcardTopic {
	t.Helper()
	topic, err := s.CreateTopic(context.Background(), &domain.FlashcardTopic{
		Title:  "Test topic",
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	return topic
}

func TestCreateAndGetFlashcard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cards@example.com")
	topic := seedTopic(t, s, user.ID)

	card, err := s.CreateFlashcard(ctx, &domain.Flashcard{
		Front:    "hola",
		Back:     "hello",
		TopicID:  topic.ID,
		Favorite: true,
		UserID:   user.ID,
	})
	if err != nil {
		t.Fatalf("CreateFlashcard: %v", err)
	}
	if card.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := s.GetFlashcard(ctx, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard: %v", err)
	}
	if got.Front != "hola" || got.Back != "hello" {
		t.Errorf("fields: got %q %q", got.Front, got.Back)
	}
	if got.TopicID != topic.ID {
		t.Errorf("TopicID: got %d, want %d", got.TopicID, topic.ID)
	}
	if !got.Favorite {
		t.Error("Favorite: expected true")
	}
}

func TestListFlashcards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cards-list@example.com")
	t1 := seedTopic(t, s, user.ID)
	t2 := seedTopic(t, s, user.ID)

	for _, tc := range []struct {
		front string
		topic int64
	}{
		{"a", t1.ID},
		{"b", t1.ID},
		{"c", t2.ID},
	} {
		if _, err := s.CreateFlashcard(ctx, &domain.Flashcard{
			Front:   tc.front,
			Back:    "x",
			TopicID: tc.topic,
			UserID:  user.ID,
		}); err != nil {
			t.Fatalf("CreateFlashcard %s: %v", tc.front, err)
		}
	}

	all, err := s.ListFlashcardsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFlashcardsByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("by user: got %d cards, want 3", len(all))
	}

	inT1, err := s.ListFlashcardsByTopic(ctx, t1.ID)
	if err != nil {
		t.Fatalf("ListFlashcardsByTopic: %v", err)
	}
	if len(inT1) != 2 {
		t.Fatalf("by topic: got %d cards, want 2", len(inT1))
	}
	for _, c := range inT1 {
		if c.TopicID != t1.ID {
			t.Errorf("leaked card from topic %d", c.TopicID)
		}
	}
}

func TestUpdateFlashcard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cards-upd@example.com")
	topic := seedTopic(t, s, user.ID)
	card, err := s.CreateFlashcard(ctx, &domain.Flashcard{
		Front:   "old front",
		Back:    "old back",
		TopicID: topic.ID,
		UserID:  user.ID,
	})
	if err != nil {
		t.Fatalf("CreateFlashcard: %v", err)
	}

	if err := s.UpdateFlashcard(ctx, card.ID, "new front", "new back", true); err != nil {
		t.Fatalf("UpdateFlashcard: %v", err)
	}

	got, err := s.GetFlashcard(ctx, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard: %v", err)
	}
	if got.Front != "new front" || got.Back != "new back" || !got.Favorite {
		t.Errorf("got %q %q favorite=%v", got.Front, got.Back, got.Favorite)
	}
	if got.TopicID != topic.ID {
		t.Errorf("TopicID changed: got %d", got.TopicID)
	}

	if err := s.UpdateFlashcard(ctx, 9999, "x", "y", false); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestUpdateFlashcardFavorite_LeavesContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cards-fav@example.com")
	topic := seedTopic(t, s, user.ID)
	card, err := s.CreateFlashcard(ctx, &domain.Flashcard{
		Front:   "keep me",
		Back:    "me too",
		TopicID: topic.ID,
		UserID:  user.ID,
	})
	if err != nil {
		t.Fatalf("CreateFlashcard: %v", err)
	}

	if err := s.UpdateFlashcardFavorite(ctx, card.ID, true); err != nil {
		t.Fatalf("UpdateFlashcardFavorite: %v", err)
	}

	got, err := s.GetFlashcard(ctx, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard: %v", err)
	}
	if !got.Favorite {
		t.Error("Favorite: expected true")
	}
	if got.Front != "keep me" || got.Back != "me too" {
		t.Errorf("content clobbered: %q %q", got.Front, got.Back)
	}

	if err := s.UpdateFlashcardFavorite(ctx, 9999, true); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteFlashcard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cards-del@example.com")
	topic := seedTopic(t, s, user.ID)
	card, err := s.CreateFlashcard(ctx, &domain.Flashcard{
		Front:   "bye",
		Back:    "adios",
		TopicID: topic.ID,
		UserID:  user.ID,
	})
	if err != nil {
		t.Fatalf("CreateFlashcard: %v", err)
	}

	if err := s.DeleteFlashcard(ctx, card.ID); err != nil {
		t.Fatalf("DeleteFlashcard: %v", err)
	}
	if _, err := s.GetFlashcard(ctx, card.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The topic survives its cards.
	if _, err := s.GetTopic(ctx, topic.ID); err != nil {
		t.Errorf("topic should survive card delete: %v", err)
	}
}
