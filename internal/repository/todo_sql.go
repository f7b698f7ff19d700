package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

const todoColumns = `id, title, is_done, created_at, assigned_to_id`

// SQLTodoRepository works on either a *sqlx.DB or a *sqlx.Tx. Queries use
// '?' placeholders and are rebound for the active driver.
type SQLTodoRepository struct {
	db sqlx.ExtContext
}

func NewSQLTodo(db sqlx.ExtContext) *SQLTodoRepository {
	return &SQLTodoRepository{db: db}
}

func (r *SQLTodoRepository) Create(ctx context.Context, todo model.TodoItem) (model.TodoItem, error) {
	query := r.db.Rebind(`
		INSERT INTO todo_items (title, is_done, assigned_to_id)
		VALUES (?, ?, ?)
		RETURNING ` + todoColumns)

	row := r.db.QueryRowxContext(ctx, query, todo.Title, todo.IsDone, todo.AssignedToID)
	return scanTodo(row)
}

func (r *SQLTodoRepository) GetByID(ctx context.Context, todoID int64) (model.TodoItem, error) {
	query := r.db.Rebind(`
		SELECT ` + todoColumns + `
		FROM todo_items
		WHERE id = ?`)

	row := r.db.QueryRowxContext(ctx, query, todoID)
	return scanTodo(row)
}

// MarkDone only touches is_done, so a concurrent assignment is never
// overwritten. Completion is one-way.
func (r *SQLTodoRepository) MarkDone(ctx context.Context, todoID int64) (model.TodoItem, error) {
	query := r.db.Rebind(`
		UPDATE todo_items
		SET is_done = ?
		WHERE id = ?
		RETURNING ` + todoColumns)

	row := r.db.QueryRowxContext(ctx, query, true, todoID)
	return scanTodo(row)
}

// SetAssignee only touches assigned_to_id. A nil assignedTo clears it.
func (r *SQLTodoRepository) SetAssignee(ctx context.Context, todoID int64, assignedTo *int64) (model.TodoItem, error) {
	query := r.db.Rebind(`
		UPDATE todo_items
		SET assigned_to_id = ?
		WHERE id = ?
		RETURNING ` + todoColumns)

	row := r.db.QueryRowxContext(ctx, query, assignedTo, todoID)
	return scanTodo(row)
}

func (r *SQLTodoRepository) Delete(ctx context.Context, todoID int64) error {
	query := r.db.Rebind(`DELETE FROM todo_items WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, todoID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *SQLTodoRepository) List(ctx context.Context, filter model.AssigneeFilter) ([]model.TodoItem, error) {
	var (
		where []string
		args  []any
	)

	switch filter.Kind {
	case model.AssigneeUnassigned:
		where = append(where, "assigned_to_id IS NULL")
	case model.AssigneePerson:
		where = append(where, "assigned_to_id = ?")
		args = append(args, filter.PersonID)
	}

	query := `SELECT ` + todoColumns + ` FROM todo_items`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// id breaks ties between rows created within the same clock tick
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []model.TodoItem{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTodo(row scannable) (model.TodoItem, error) {
	var (
		t          model.TodoItem
		assignedTo sql.NullInt64
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.IsDone,
		timestamp{&t.CreatedAt}, &assignedTo,
	)
	if err != nil {
		return model.TodoItem{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	if assignedTo.Valid {
		id := assignedTo.Int64
		t.AssignedToID = &id
	}
	return t, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// timestamp accepts both native driver times (lib/pq) and the text form
// SQLite stores, and normalises to UTC.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*ts.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// ensure compile-time interface compliance
var _ TodoRepository = (*SQLTodoRepository)(nil)
