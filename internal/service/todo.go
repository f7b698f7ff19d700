package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
	"github.com/jaekwang-park/todo-assign-api/internal/repository"
)

type CreateTodoInput struct {
	Title        string
	AssignedToID *int64
}

type AssignTodoInput struct {
	// AssignedToID nil unassigns the todo.
	AssignedToID *int64
}

// TodoService runs every operation in its own store transaction.
type TodoService struct {
	store repository.Store
}

func NewTodoService(store repository.Store) *TodoService {
	return &TodoService{store: store}
}

func (s *TodoService) List(ctx context.Context, filter model.AssigneeFilter) ([]model.TodoItem, error) {
	var todos []model.TodoItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		todos, err = tx.Todos().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list todos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.TodoItem{}
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (model.TodoItem, error) {
	var created model.TodoItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		if input.AssignedToID != nil {
			if err := ensurePerson(ctx, tx, *input.AssignedToID); err != nil {
				return err
			}
		}

		var err error
		created, err = tx.Todos().Create(ctx, model.TodoItem{
			Title:        input.Title,
			IsDone:       false,
			AssignedToID: input.AssignedToID,
		})
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.TodoItem{}, err
	}
	return created, nil
}

// MarkDone sets is_done. Marking an already completed todo succeeds.
func (s *TodoService) MarkDone(ctx context.Context, todoID int64) (model.TodoItem, error) {
	var updated model.TodoItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		updated, err = tx.Todos().MarkDone(ctx, todoID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTodoNotFound
			}
			return fmt.Errorf("failed to mark todo done: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.TodoItem{}, err
	}
	return updated, nil
}

func (s *TodoService) Assign(ctx context.Context, todoID int64, input AssignTodoInput) (model.TodoItem, error) {
	var updated model.TodoItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		// an unknown todo is reported before an unknown person
		if _, err := getTodo(ctx, tx, todoID); err != nil {
			return err
		}

		if input.AssignedToID != nil {
			if err := ensurePerson(ctx, tx, *input.AssignedToID); err != nil {
				return err
			}
		}

		var err error
		updated, err = tx.Todos().SetAssignee(ctx, todoID, input.AssignedToID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTodoNotFound
			}
			return fmt.Errorf("failed to assign todo: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.TodoItem{}, err
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, todoID int64) error {
	return s.store.WithTx(ctx, func(tx repository.Tx) error {
		err := tx.Todos().Delete(ctx, todoID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTodoNotFound
			}
			return fmt.Errorf("failed to delete todo: %w", err)
		}
		return nil
	})
}

func getTodo(ctx context.Context, tx repository.Tx, todoID int64) (model.TodoItem, error) {
	todo, err := tx.Todos().GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TodoItem{}, ErrTodoNotFound
		}
		return model.TodoItem{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

func ensurePerson(ctx context.Context, tx repository.Tx, personID int64) error {
	if _, err := tx.People().GetByID(ctx, personID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPersonNotFound
		}
		return fmt.Errorf("failed to check person: %w", err)
	}
	return nil
}
