package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/studyhallapp/studyhall-server/internal/store"
)

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Alice", "alice@example.com", "$argon2id$hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("CreateUser: expected assigned id")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt: expected non-zero")
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("Name: got %q, want %q", got.Name, "Alice")
	}
	if got.Email != "alice@example.com" {
		t.Errorf("Email: got %q, want %q", got.Email, "alice@example.com")
	}
	if got.PasswordHash != "$argon2id$hash" {
		t.Errorf("PasswordHash: got %q, want %q", got.PasswordHash, "$argon2id$hash")
	}
	if got.CreatedAt.Unix() != user.CreatedAt.Unix() {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, user.CreatedAt)
	}
}

func TestCreateUser_SequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1, err := s.CreateUser(ctx, "First", "first@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser u1: %v", err)
	}
	u2, err := s.CreateUser(ctx, "Second", "second@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser u2: %v", err)
	}
	if u2.ID <= u1.ID {
		t.Errorf("expected increasing ids, got %d then %d", u1.ID, u2.ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetUser(ctx, 9999)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *store.Error, got %T: %v", err, err)
	}
	if storeErr.Code != store.ErrNotFound.Code {
		t.Errorf("expected status %d, got %d", store.ErrNotFound.Code, storeErr.Code)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "One", "duplicate@example.com", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := s.CreateUser(ctx, "Two", "duplicate@example.com", "otherhash")
	if err == nil {
		t.Fatal("expected error for duplicate email, got nil")
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Bob", "bob@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID: got %d, want %d", got.ID, user.ID)
	}

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestUpdateUserName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "rename@example.com")

	if err := s.UpdateUserName(ctx, user.ID, "Renamed"); err != nil {
		t.Fatalf("UpdateUserName: %v", err)
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name: got %q, want %q", got.Name, "Renamed")
	}

	if err := s.UpdateUserName(ctx, 9999, "Nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteUser_CascadesOwnedRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "cascade@example.com")

	cat, err := s.CreateCategory(ctx, "Math", "#ff0000", user.ID)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	todo, err := s.CreateTodo(ctx, "Buy pens", "low", user.ID)
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	if err := s.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := s.GetUser(ctx, user.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}
	if _, err := s.GetCategory(ctx, cat.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected category cascaded, got %v", err)
	}
	if _, err := s.GetTodo(ctx, todo.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected todo cascaded, got %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.DeleteUser(ctx, 424242)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
