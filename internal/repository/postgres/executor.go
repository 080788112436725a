package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor позволяет репозиториям работать как с *sql.DB, так и с *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
