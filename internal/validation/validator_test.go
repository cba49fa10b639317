package validation

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/studyhallapp/studyhall-server/internal/store"
)

type registerForm struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(registerForm{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "longenough",
	})
	if err != nil {
		t.Errorf("Validate() failed on valid input: %v", err)
	}
}

func TestValidate_ReturnsBadRequest(t *testing.T) {
	v := New()

	err := v.Validate(registerForm{})
	if err == nil {
		t.Fatal("Validate() should fail on empty input")
	}

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("error should be a *store.Error, got %T", err)
	}
	if storeErr.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want %d", storeErr.Code, http.StatusBadRequest)
	}
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(registerForm{Name: "Alice", Email: "not-an-email", Password: "longenough"})
	if err == nil {
		t.Fatal("Validate() should fail on bad email")
	}
	if !strings.Contains(err.Error(), "email must be a valid email address") {
		t.Errorf("message should name the json field: %q", err.Error())
	}
	if strings.Contains(err.Error(), "Email") {
		t.Errorf("message should not use the Go field name: %q", err.Error())
	}
}

func TestValidate_MessagePerTag(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input registerForm
		want  string
	}{
		{
			name:  "required",
			input: registerForm{Email: "a@example.com", Password: "longenough"},
			want:  "name is required",
		},
		{
			name:  "min",
			input: registerForm{Name: "Alice", Email: "a@example.com", Password: "short"},
			want:  "password must be at least 8 characters",
		},
		{
			name:  "max",
			input: registerForm{Name: strings.Repeat("x", 101), Email: "a@example.com", Password: "longenough"},
			want:  "name must not exceed 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate_JoinsMultipleFailures(t *testing.T) {
	v := New()

	err := v.Validate(registerForm{})
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	msg := err.Error()
	for _, want := range []string{"name is required", "email is required", "password is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
	if strings.Count(msg, ";") != 2 {
		t.Errorf("three failures should be joined by two separators: %q", msg)
	}
}
