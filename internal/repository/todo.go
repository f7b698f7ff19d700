package repository

import (
	"context"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

type TodoRepository interface {
	Create(ctx context.Context, todo model.TodoItem) (model.TodoItem, error)
	GetByID(ctx context.Context, todoID int64) (model.TodoItem, error)
	MarkDone(ctx context.Context, todoID int64) (model.TodoItem, error)
	SetAssignee(ctx context.Context, todoID int64, assignedTo *int64) (model.TodoItem, error)
	Delete(ctx context.Context, todoID int64) error
	List(ctx context.Context, filter model.AssigneeFilter) ([]model.TodoItem, error)
}
