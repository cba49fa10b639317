package domain

// Category is an optional classifier for events, assignments, and flashcard
// topics/cards. Deleting a category nulls out references instead of
// cascading.
type Category struct {
	ID     int64
	Name   string
	Color  string
	UserID int64
}
