package exec

import (
	"context"
	"database/sql"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/querylab/qbind/bind"
)

// preparer is implemented by database adapters that support server-side
// prepared statements through database/sql. The pgx adapter prepares
// automatically, so it stays off this path.
type preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// stmtKey identifies a prepared statement by the database it was prepared on
// and the SQL text. A statement is only valid on the connection that prepared
// it, so one executor serving several connections must never share entries
// across them.
type stmtKey struct {
	db  preparer
	sql uint64
}

// StatementCache keeps prepared statements keyed by (database, SQL
// fingerprint). Evicted statements are closed.
type StatementCache struct {
	cache *lru.Cache[stmtKey, *sql.Stmt]
	mu    sync.Mutex
}

func NewStatementCache(size int) *StatementCache {
	cache, _ := lru.NewWithEvict(size, func(key stmtKey, stmt *sql.Stmt) {
		stmt.Close()
	})
	return &StatementCache{cache: cache}
}

// GetOrPrepare returns the statement cached for (db, query), preparing and
// caching it on a miss.
func (s *StatementCache) GetOrPrepare(ctx context.Context, db preparer, query string) (*sql.Stmt, error) {
	key := stmtKey{db: db, sql: bind.Fingerprint(query)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if stmt, ok := s.cache.Get(key); ok {
		return stmt, nil
	}

	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, stmt)
	return stmt, nil
}

// Close purges the cache, closing every cached statement via the evict hook.
func (s *StatementCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
	return nil
}
