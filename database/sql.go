package database

import (
	"context"
	"database/sql"
)

// SqlDatabase implements Database over *sql.DB. MySQL and SQLite connections
// go through here.
type SqlDatabase struct {
	db *sql.DB
}

func NewSqlDatabase(db *sql.DB) *SqlDatabase {
	return &SqlDatabase{db: db}
}

func (s *SqlDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SqlDatabase) Close() error { return s.db.Close() }

// PrepareContext exposes statement preparation for the executor's statement
// cache. pgxpool prepares automatically, so only the sql adapter has this.
func (s *SqlDatabase) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return s.db.PrepareContext(ctx, query)
}

// SqlRows implements Rows over *sql.Rows.
type SqlRows struct {
	rows *sql.Rows
}

// NewSqlRows wraps rows obtained outside this adapter, such as from a cached
// prepared statement.
func NewSqlRows(rows *sql.Rows) *SqlRows {
	return &SqlRows{rows: rows}
}

func (s *SqlRows) Next() bool                 { return s.rows.Next() }
func (s *SqlRows) Scan(dest ...any) error     { return s.rows.Scan(dest...) }
func (s *SqlRows) Err() error                 { return s.rows.Err() }
func (s *SqlRows) Close() error               { return s.rows.Close() }
func (s *SqlRows) Columns() ([]string, error) { return s.rows.Columns() }

var _ Database = (*SqlDatabase)(nil)
