package domain

// FlashcardTopic groups flashcards. Deleting a topic cascades to its cards.
type FlashcardTopic struct {
	ID          int64
	Title       string
	Description string
	CategoryID  *int64
	Color       string
	UserID      int64

	// CardsCount is computed at read time via a join, never stored.
	CardsCount int
}

// Flashcard is a single front/back study card inside a topic.
type Flashcard struct {
	ID         int64
	Front      string
	Back       string
	TopicID    int64
	CategoryID *int64
	Favorite   bool
	UserID     int64
}
