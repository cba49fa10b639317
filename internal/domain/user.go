// Package domain defines the core entities of the StudyHall server.
//
// Every entity except User carries a UserID naming its owner. Ownership is
// immutable for the lifetime of a row, and deleting a user hard-deletes
// everything they own (enforced by foreign keys in the store).
package domain

import "time"

// User is an authenticated account and the root of all ownership.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // argon2id encoded, never sent to clients
	CreatedAt    time.Time
}
