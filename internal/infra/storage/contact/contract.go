package contact

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of *sql.DB the repository needs.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
