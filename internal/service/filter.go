package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

// ParseAssigneeFilter turns the assigned_to_id query parameter into a filter.
// present reports whether the parameter appeared in the request at all, which
// is what separates "all todos" from "unassigned todos".
func ParseAssigneeFilter(present bool, raw string) (model.AssigneeFilter, error) {
	if !present {
		return model.AnyAssignee(), nil
	}
	if raw == "" {
		return model.Unassigned(), nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return model.AssigneeFilter{}, fmt.Errorf("%w: assigned_to_id must be a number or empty for unassigned", ErrInvalidInput)
	}
	return model.AssignedTo(id), nil
}
