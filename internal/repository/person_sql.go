package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

type SQLPersonRepository struct {
	db sqlx.ExtContext
}

func NewSQLPerson(db sqlx.ExtContext) *SQLPersonRepository {
	return &SQLPersonRepository{db: db}
}

func (r *SQLPersonRepository) GetByID(ctx context.Context, personID int64) (model.Person, error) {
	query := r.db.Rebind(`SELECT id, name FROM people WHERE id = ?`)

	var p model.Person
	if err := sqlx.GetContext(ctx, r.db, &p, query, personID); err != nil {
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}
	return p, nil
}

func (r *SQLPersonRepository) Create(ctx context.Context, person model.Person) (model.Person, error) {
	query := r.db.Rebind(`INSERT INTO people (name) VALUES (?) RETURNING id, name`)

	var p model.Person
	if err := sqlx.GetContext(ctx, r.db, &p, query, person.Name); err != nil {
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}
	return p, nil
}

var _ PersonRepository = (*SQLPersonRepository)(nil)
