package domain

// Todo is a simple checklist item. Priority is a free-form string chosen by
// the client (typically "low", "medium", "high").
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	Priority  string
	UserID    int64
}
