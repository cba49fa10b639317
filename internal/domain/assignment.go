package domain

import "time"

// Assignment statuses used when deriving a status from the completed flag.
// Status itself is free-form; the kanban board sends whatever column name
// the card landed in.
const (
	AssignmentStatusTodo = "todo"
	AssignmentStatusDone = "done"
)

// Assignment is a piece of work, optionally linked to an event and a
// category, tracked on a kanban board via Status.
type Assignment struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
	Status      string
	EventID     *int64
	CategoryID  *int64
	UserID      int64
}
