package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jaekwang-park/todo-assign-api/internal/validation"
)

type titled struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

func TestValidator_Struct(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantField bool
		wantMsg   string
	}{
		{"valid", "Buy milk", false, ""},
		{"single char", "x", false, ""},
		{"max length", strings.Repeat("a", 200), false, ""},
		{"max length multibyte", strings.Repeat("한", 200), false, ""},
		{"empty", "", true, "title is required"},
		{"too long", strings.Repeat("a", 201), true, "title must be at most 200 characters"},
	}

	v := validation.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(titled{Title: tt.title})

			if !tt.wantField {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var fields validation.FieldErrors
			if !errors.As(err, &fields) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if got := fields["title"]; got != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	err := validation.FieldErrors{"title": "title is required"}

	if got := err.Error(); got != "validation failed: title: title is required" {
		t.Errorf("unexpected error string %q", got)
	}
}
