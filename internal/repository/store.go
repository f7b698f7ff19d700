package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store runs units of work against the todo and person tables.
type Store interface {
	// WithTx runs fn inside a single transaction. The transaction commits
	// when fn returns nil and is rolled back on any error or panic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Todos() TodoRepository
	People() PersonRepository
}

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op once committed.
	defer tx.Rollback()

	if err := fn(&sqlTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type sqlTx struct {
	tx *sqlx.Tx
}

func (t *sqlTx) Todos() TodoRepository {
	return NewSQLTodo(t.tx)
}

func (t *sqlTx) People() PersonRepository {
	return NewSQLPerson(t.tx)
}

var _ Store = (*SQLStore)(nil)
