package exec

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPreparer struct {
	prepared []string
}

func (p *countingPreparer) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	p.prepared = append(p.prepared, query)
	return new(sql.Stmt), nil
}

func TestStatementCachePreparesOncePerStatement(t *testing.T) {
	cache := NewStatementCache(16)
	db := &countingPreparer{}
	ctx := context.Background()

	s1, err := cache.GetOrPrepare(ctx, db, "SELECT id FROM users WHERE id = $1")
	require.NoError(t, err)
	s2, err := cache.GetOrPrepare(ctx, db, "SELECT id FROM users WHERE id = $1")
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Len(t, db.prepared, 1)

	_, err = cache.GetOrPrepare(ctx, db, "SELECT id FROM orders WHERE id = $1")
	require.NoError(t, err)
	assert.Len(t, db.prepared, 2)
}

func TestStatementCacheIsolatesConnections(t *testing.T) {
	cache := NewStatementCache(16)
	db1 := &countingPreparer{}
	db2 := &countingPreparer{}
	ctx := context.Background()

	const query = "SELECT id FROM users WHERE id = $1"

	s1, err := cache.GetOrPrepare(ctx, db1, query)
	require.NoError(t, err)
	s2, err := cache.GetOrPrepare(ctx, db2, query)
	require.NoError(t, err)

	// A statement is only valid on the database that prepared it: the same
	// SQL on a second connection must prepare again, never reuse db1's stmt.
	assert.NotSame(t, s1, s2)
	assert.Len(t, db1.prepared, 1)
	assert.Len(t, db2.prepared, 1)

	s1again, err := cache.GetOrPrepare(ctx, db1, query)
	require.NoError(t, err)
	assert.Same(t, s1, s1again)
	assert.Len(t, db1.prepared, 1)
}
