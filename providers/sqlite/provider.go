// Package sqlite provides the mattn/go-sqlite3 backed connector provider.
// Importing it for side effects registers the "sqlite" provider. The config's
// Database field holds the database file path (":memory:" works too).
package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/querylab/qbind/connector"
	"github.com/querylab/qbind/database"
	"github.com/querylab/qbind/dialect"
)

type Provider struct{}

func init() {
	connector.Register("sqlite", &Provider{})
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	db, err := sql.Open("sqlite3", cfg.Database)
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; more than one open connection just queues
	// on the file lock.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &connection{db: db, dialect: dialect.NewSQLiteDialect()}, nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewSQLiteDialect()
}

func (p *Provider) HealthCheck(ctx context.Context, conn connector.Connection) error {
	return conn.Health(ctx)
}

type connection struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func (c *connection) Database() database.Database {
	return database.NewSqlDatabase(c.db)
}

func (c *connection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *connection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *connection) Stats() connector.ConnectionStats {
	s := c.db.Stats()
	return connector.ConnectionStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
	}
}

func (c *connection) Close() error {
	return c.db.Close()
}
