package repository

import (
	"context"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

type PersonRepository interface {
	GetByID(ctx context.Context, personID int64) (model.Person, error)
	Create(ctx context.Context, person model.Person) (model.Person, error)
}
