package connector

import (
	"context"
	"fmt"
	"sync"
)

type standardConnector struct {
	provider Provider
	config   Config
}

var globalManager = &Manager{
	providers: make(map[string]Provider),
}

type Manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// Register makes a provider available under the given dialect name. Provider
// packages call this from init.
func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// New returns a connector for a registered provider.
func New(name string, config Config) (Connector, error) {
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[name]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", name)
	}
	if err := config.Validate(provider.Dialect().Name()); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", name, err)
	}
	return &standardConnector{provider: provider, config: config}, nil
}

// Open is the one-call path: resolve the provider, connect (with the config's
// retry policy when present), and return the live connection.
func Open(ctx context.Context, name string, config Config) (Connection, error) {
	c, err := New(name, config)
	if err != nil {
		return nil, err
	}
	if config.Retry != nil {
		return c.ConnectWithRetry(ctx, *config.Retry)
	}
	return c.Connect(ctx)
}

func (c *standardConnector) Connect(ctx context.Context) (Connection, error) {
	if c.config.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ConnectTimeout)
		defer cancel()
	}
	return c.provider.Connect(ctx, c.config)
}

func (c *standardConnector) ConnectWithRetry(ctx context.Context, opts RetryConfig) (Connection, error) {
	return retryConnect(ctx, opts, c.Connect)
}
