// Package connector opens database connections from declarative config.
// Vendor support is pluggable: providers register themselves by dialect name
// and hand back a Connection wrapping the vendor transport.
package connector

import (
	"context"

	"github.com/querylab/qbind/database"
	"github.com/querylab/qbind/dialect"
)

type Connection interface {
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	ConnectWithRetry(ctx context.Context, opts RetryConfig) (Connection, error)
}

type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
	HealthCheck(ctx context.Context, conn Connection) error
}
