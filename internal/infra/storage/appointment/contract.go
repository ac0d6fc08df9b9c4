package appointment

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of *sql.DB the repository needs. Kept as an
// interface so tests can substitute a stub and metrics wrappers can be
// layered in without touching the repository.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
