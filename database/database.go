// Package database is the transport boundary: the subset of driver behavior
// the executor needs, implemented over pgxpool for PostgreSQL and over
// database/sql for everything else. Queries arrive here already rewritten to
// positional form with arguments in a separate channel.
package database

import "context"

type Database interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (Result, error)
	PingContext(ctx context.Context) error
	Close() error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() ([]string, error)
}

type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}
