package service_test

import (
	"errors"
	"testing"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
	"github.com/jaekwang-park/todo-assign-api/internal/service"
)

func TestParseAssigneeFilter(t *testing.T) {
	tests := []struct {
		name    string
		present bool
		raw     string
		want    model.AssigneeFilter
		wantErr bool
	}{
		{"absent", false, "", model.AnyAssignee(), false},
		{"absent ignores raw", false, "abc", model.AnyAssignee(), false},
		{"empty", true, "", model.Unassigned(), false},
		{"numeric", true, "3", model.AssignedTo(3), false},
		{"numeric with spaces", true, " 12 ", model.AssignedTo(12), false},
		{"explicit sign", true, "+5", model.AssignedTo(5), false},
		{"negative", true, "-1", model.AssignedTo(-1), false},
		{"letters", true, "abc", model.AssigneeFilter{}, true},
		{"whitespace only", true, "  ", model.AssigneeFilter{}, true},
		{"decimal", true, "1.5", model.AssigneeFilter{}, true},
		{"overflow", true, "99999999999999999999", model.AssigneeFilter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseAssigneeFilter(tt.present, tt.raw)

			if tt.wantErr {
				if !errors.Is(err, service.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
