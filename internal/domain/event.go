package domain

import "time"

// Event is a calendar entry; the client also calls these "lessons".
// StartTime and EndTime are both required but the layer deliberately does
// not enforce StartTime <= EndTime.
type Event struct {
	ID          int64
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	CategoryID  *int64
	UserID      int64
	Location    string
	Description string

	// AssignmentIDs holds ids of assignments linked to this event,
	// aggregated at read time.
	AssignmentIDs []int64
}
