package exec

import (
	"context"

	"github.com/querylab/qbind/bind"
	"github.com/querylab/qbind/connector"
	"github.com/querylab/qbind/database"
)

// Executor runs bound queries against a connection. The zero configuration
// caches rewrite plans; an optional statement cache keeps prepared statements
// warm for database/sql transports. Neither cache changes semantics.
type Executor struct {
	plans *planCache
	stmts *StatementCache
}

type Option func(*Executor)

// WithStatementCache enables an LRU prepared-statement cache of the given
// size. Only transports that support explicit preparation use it.
func WithStatementCache(size int) Option {
	return func(e *Executor) {
		e.stmts = NewStatementCache(size)
	}
}

func New(opts ...Option) *Executor {
	e := &Executor{plans: newPlanCache()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExecutor = New()

// Execute runs a bound query through the default executor.
func Execute(ctx context.Context, conn connector.Connection, q *bind.BoundQuery) (*ResultSet, error) {
	return defaultExecutor.Execute(ctx, conn, q)
}

// Query binds and executes in one call: the caller-facing entry point taking
// a template, a parameter map, and a connection.
func Query(ctx context.Context, conn connector.Connection, template bind.Template, params map[string]any) (*ResultSet, error) {
	return defaultExecutor.Query(ctx, conn, template, params)
}

// Exec runs a bound statement that returns no rows through the default
// executor.
func Exec(ctx context.Context, conn connector.Connection, q *bind.BoundQuery) (int64, error) {
	return defaultExecutor.Exec(ctx, conn, q)
}

// Query binds params against the template and executes the result. Binding
// failures come back as KindBinding without touching the database.
func (e *Executor) Query(ctx context.Context, conn connector.Connection, template bind.Template, params map[string]any) (*ResultSet, error) {
	bound, err := bind.Bind(template, bind.FromMap(params))
	if err != nil {
		return nil, wrap(KindBinding, "bind failed", err)
	}
	return e.Execute(ctx, conn, bound)
}

// Execute sends the query in two channels, template text and arguments, in a
// single attempt. The result cursor is drained and closed before returning,
// on every path.
func (e *Executor) Execute(ctx context.Context, conn connector.Connection, q *bind.BoundQuery) (*ResultSet, error) {
	plan := e.plans.get(q.Template(), conn.Dialect())
	args := plan.Args(q.Bindings())

	rows, err := e.query(ctx, conn.Database(), plan.SQL, args)
	if err != nil {
		return nil, wrap(classify(err), "query failed", err)
	}
	defer rows.Close()

	rs, err := scanRows(rows)
	if err != nil {
		return nil, wrap(classify(err), "scan failed", err)
	}
	return rs, nil
}

// Exec runs a statement that returns no rows and reports the affected count.
func (e *Executor) Exec(ctx context.Context, conn connector.Connection, q *bind.BoundQuery) (int64, error) {
	plan := e.plans.get(q.Template(), conn.Dialect())
	args := plan.Args(q.Bindings())

	res, err := conn.Database().ExecContext(ctx, plan.SQL, args...)
	if err != nil {
		return 0, wrap(classify(err), "exec failed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, wrap(KindQuery, "rows affected", err)
	}
	return affected, nil
}

func (e *Executor) query(ctx context.Context, db database.Database, sqlText string, args []any) (database.Rows, error) {
	if e.stmts != nil {
		if p, ok := db.(preparer); ok {
			stmt, err := e.stmts.GetOrPrepare(ctx, p, sqlText)
			if err != nil {
				return nil, err
			}
			rows, err := stmt.QueryContext(ctx, args...)
			if err != nil {
				return nil, err
			}
			return database.NewSqlRows(rows), nil
		}
	}
	return db.QueryContext(ctx, sqlText, args...)
}

// Close releases cached prepared statements.
func (e *Executor) Close() error {
	if e.stmts != nil {
		return e.stmts.Close()
	}
	return nil
}
