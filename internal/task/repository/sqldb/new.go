package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"dotask-bot/internal/task/repository"
	"dotask-bot/pkg/log"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type implRepository struct {
	db      *sql.DB
	q       querier
	inTx    bool
	dialect Dialect
	l       log.Logger
}

// New creates a database/sql backed Repository for the task domain.
func New(db *sql.DB, dialect Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqldb: db is required")
	}
	if !dialect.Valid() {
		panic(fmt.Sprintf("task/repository/sqldb: unsupported dialect %q", dialect))
	}
	return &implRepository{db: db, q: db, dialect: dialect, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqldb.%s", method)
}
