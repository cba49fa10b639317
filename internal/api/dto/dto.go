// Package dto defines the wire representations of StudyHall entities and
// the formatters that produce them.
//
// Conventions shared by every formatter: numeric identifiers become decimal
// strings (clients keep precision when ids grow past 2^53), timestamps
// become ISO-8601 strings, and absent optional references become empty
// strings rather than nulls. Formatters are pure functions of their input,
// so formatting the same row twice always yields identical output.
package dto

import (
	"strconv"
	"time"

	"github.com/studyhallapp/studyhall-server/internal/domain"
)

// User is the public profile; the password hash never appears here.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Category is the wire form of domain.Category.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID string `json:"userId"`
}

// Event is the wire form of domain.Event.
type Event struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	CategoryID    string   `json:"categoryId"`
	UserID        string   `json:"userId"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	AssignmentIDs []string `json:"assignmentIds"`
}

// Assignment is the wire form of domain.Assignment.
type Assignment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	Status      string `json:"status"`
	EventID     string `json:"eventId"`
	CategoryID  string `json:"categoryId"`
	UserID      string `json:"userId"`
}

// Todo is the wire form of domain.Todo.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	UserID    string `json:"userId"`
}

// FlashcardTopic is the wire form of domain.FlashcardTopic.
type FlashcardTopic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
	Color       string `json:"color"`
	UserID      string `json:"userId"`
	CardsCount  int    `json:"cardsCount"`
}

// Flashcard is the wire form of domain.Flashcard.
type Flashcard struct {
	ID         string `json:"id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	TopicID    string `json:"topicId"`
	CategoryID string `json:"categoryId"`
	Favorite   bool   `json:"favorite"`
	UserID     string `json:"userId"`
}

// formatID renders a storage id as a decimal string.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// formatOptionalID renders a nullable reference, empty when absent.
func formatOptionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return formatID(*id)
}

// formatTime renders a timestamp as ISO-8601 (RFC 3339) in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatOptionalTime renders a nullable timestamp, empty when absent.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// FormatUser maps a user row to its public profile.
func FormatUser(u *domain.User) User {
	return User{
		ID:        formatID(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// FormatCategory maps a category row to its wire form.
func FormatCategory(c *domain.Category) Category {
	return Category{
		ID:     formatID(c.ID),
		Name:   c.Name,
		Color:  c.Color,
		UserID: formatID(c.UserID),
	}
}

// FormatEvent maps an event row to its wire form, including the linked
// assignment ids as strings.
func FormatEvent(e *domain.Event) Event {
	assignmentIDs := make([]string, 0, len(e.AssignmentIDs))
	for _, id := range e.AssignmentIDs {
		assignmentIDs = append(assignmentIDs, formatID(id))
	}

	return Event{
		ID:            formatID(e.ID),
		Title:         e.Title,
		StartTime:     formatTime(e.StartTime),
		EndTime:       formatTime(e.EndTime),
		CategoryID:    formatOptionalID(e.CategoryID),
		UserID:        formatID(e.UserID),
		Location:      e.Location,
		Description:   e.Description,
		AssignmentIDs: assignmentIDs,
	}
}

// FormatAssignment maps an assignment row to its wire form.
func FormatAssignment(a *domain.Assignment) Assignment {
	return Assignment{
		ID:          formatID(a.ID),
		Title:       a.Title,
		Description: a.Description,
		DueDate:     formatOptionalTime(a.DueDate),
		Completed:   a.Completed,
		Status:      a.Status,
		EventID:     formatOptionalID(a.EventID),
		CategoryID:  formatOptionalID(a.CategoryID),
		UserID:      formatID(a.UserID),
	}
}

// FormatTodo maps a todo row to its wire form.
func FormatTodo(t *domain.Todo) Todo {
	return Todo{
		ID:        formatID(t.ID),
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  t.Priority,
		UserID:    formatID(t.UserID),
	}
}

// FormatTopic maps a flashcard topic row to its wire form.
func FormatTopic(t *domain.FlashcardTopic) FlashcardTopic {
	return FlashcardTopic{
		ID:          formatID(t.ID),
		Title:       t.Title,
		Description: t.Description,
		CategoryID:  formatOptionalID(t.CategoryID),
		Color:       t.Color,
		UserID:      formatID(t.UserID),
		CardsCount:  t.CardsCount,
	}
}

// FormatFlashcard maps a flashcard row to its wire form.
func FormatFlashcard(f *domain.Flashcard) Flashcard {
	return Flashcard{
		ID:         formatID(f.ID),
		Front:      f.Front,
		Back:       f.Back,
		TopicID:    formatID(f.TopicID),
		CategoryID: formatOptionalID(f.CategoryID),
		Favorite:   f.Favorite,
		UserID:     formatID(f.UserID),
	}
}

// FormatCategories maps a list of categories.
func FormatCategories(in []*domain.Category) []Category {
	out := make([]Category, 0, len(in))
	for _, c := range in {
		out = append(out, FormatCategory(c))
	}
	return out
}

// FormatEvents maps a list of events.
func FormatEvents(in []*domain.Event) []Event {
	out := make([]Event, 0, len(in))
	for _, e := range in {
		out = append(out, FormatEvent(e))
	}
	return out
}

// FormatAssignments maps a list of assignments.
func FormatAssignments(in []*domain.Assignment) []Assignment {
	out := make([]Assignment, 0, len(in))
	for _, a := range in {
		out = append(out, FormatAssignment(a))
	}
	return out
}

// FormatTodos maps a list of todos.
func FormatTodos(in []*domain.Todo) []Todo {
	out := make([]Todo, 0, len(in))
	for _, t := range in {
		out = append(out, FormatTodo(t))
	}
	return out
}

// FormatTopics maps a list of flashcard topics.
func FormatTopics(in []*domain.FlashcardTopic) []FlashcardTopic {
	out := make([]FlashcardTopic, 0, len(in))
	for _, t := range in {
		out = append(out, FormatTopic(t))
	}
	return out
}

// FormatFlashcards maps a list of flashcards.
func FormatFlashcards(in []*domain.Flashcard) []Flashcard {
	out := make([]Flashcard, 0, len(in))
	for _, f := range in {
		out = append(out, FormatFlashcard(f))
	}
	return out
}
