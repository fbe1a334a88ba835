// Package mysql provides the go-sql-driver backed MySQL connector provider.
// Importing it for side effects registers the "mysql" provider.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/querylab/qbind/connector"
	"github.com/querylab/qbind/database"
	"github.com/querylab/qbind/dialect"
)

type Provider struct{}

func init() {
	connector.Register("mysql", &Provider{})
}

func (p *Provider) buildDSN(cfg connector.Config) string {
	// go-sql-driver DSN form: user:pass@tcp(host:port)/dbname?k=v
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	for k, v := range cfg.Params {
		dsn += "&" + k + "=" + v
	}
	return dsn
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	db, err := sql.Open("mysql", p.buildDSN(cfg))
	if err != nil {
		return nil, err
	}
	applyPool(db, cfg.Pool)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return newSQLConnection(db, dialect.NewMySQLDialect()), nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewMySQLDialect()
}

func (p *Provider) HealthCheck(ctx context.Context, conn connector.Connection) error {
	return conn.Health(ctx)
}

func applyPool(db *sql.DB, pool connector.PoolConfig) {
	if pool.MaxOpen > 0 {
		db.SetMaxOpenConns(pool.MaxOpen)
	}
	if pool.MaxIdle > 0 {
		db.SetMaxIdleConns(pool.MaxIdle)
	}
	if pool.MaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.MaxLifetime)
	}
	if pool.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(pool.MaxIdleTime)
	}
}

type sqlConnection struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func newSQLConnection(db *sql.DB, d dialect.Dialect) *sqlConnection {
	return &sqlConnection{db: db, dialect: d}
}

func (c *sqlConnection) Database() database.Database {
	return database.NewSqlDatabase(c.db)
}

func (c *sqlConnection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *sqlConnection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlConnection) Stats() connector.ConnectionStats {
	s := c.db.Stats()
	return connector.ConnectionStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
	}
}

func (c *sqlConnection) Close() error {
	return c.db.Close()
}
