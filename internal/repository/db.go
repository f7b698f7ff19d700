package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jaekwang-park/todo-assign-api/internal/model"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, driver, dsn string, pool PoolConfig) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

var schemas = map[string][]string{
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS people (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT ''
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS todo_items (
			id             BIGSERIAL PRIMARY KEY,
			title          VARCHAR(%d) NOT NULL,
			is_done        BOOLEAN NOT NULL DEFAULT FALSE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			assigned_to_id BIGINT NULL REFERENCES people(id)
		)`, model.TitleMaxLength),
		`CREATE INDEX IF NOT EXISTS idx_todo_items_created_at ON todo_items (created_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_todo_items_assigned_to_id ON todo_items (assigned_to_id)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS people (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT ''
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS todo_items (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			title          VARCHAR(%d) NOT NULL,
			is_done        BOOLEAN NOT NULL DEFAULT 0,
			created_at     TIMESTAMP NOT NULL DEFAULT (strftime('%%Y-%%m-%%d %%H:%%M:%%f', 'now')),
			assigned_to_id INTEGER NULL REFERENCES people(id)
		)`, model.TitleMaxLength),
		`CREATE INDEX IF NOT EXISTS idx_todo_items_created_at ON todo_items (created_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_todo_items_assigned_to_id ON todo_items (assigned_to_id)`,
	},
}

// ApplySchema creates the people and todo_items tables when they are missing.
// It is idempotent and never alters existing tables.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	stmts, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
