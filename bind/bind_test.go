package bind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querylab/qbind/dialect"
)

func TestBind(t *testing.T) {
	tests := []struct {
		name        string
		template    Template
		bindings    map[string]any
		expectError bool
		missing     []string
		unknown     []string
	}{
		{
			name:     "ExactMatch",
			template: "SELECT * FROM users WHERE age > :min AND age < :max",
			bindings: map[string]any{"min": 18, "max": 65},
		},
		{
			name:     "EmptyBoth",
			template: "SELECT * FROM users",
			bindings: nil,
		},
		{
			name:        "MissingBinding",
			template:    "SELECT * FROM users WHERE id = :id AND name = :name",
			bindings:    map[string]any{"id": 1},
			expectError: true,
			missing:     []string{"name"},
		},
		{
			name:        "UnknownBinding",
			template:    "SELECT * FROM users WHERE id = :id",
			bindings:    map[string]any{"id": 1, "extra": "x"},
			expectError: true,
			unknown:     []string{"extra"},
		},
		{
			name:        "BothDirections",
			template:    "SELECT * FROM users WHERE id = :id",
			bindings:    map[string]any{"other": 2},
			expectError: true,
			missing:     []string{"id"},
			unknown:     []string{"other"},
		},
		{
			name:     "NilValueIsBound",
			template: "SELECT * FROM users WHERE deleted_at IS NOT DISTINCT FROM :cutoff",
			bindings: map[string]any{"cutoff": nil},
		},
		{
			name:     "RepeatedPlaceholderOneValue",
			template: "SELECT * FROM users WHERE first_name = :name OR last_name = :name",
			bindings: map[string]any{"name": "Frida"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound, err := Bind(tt.template, FromMap(tt.bindings))

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, bound)
				assert.ErrorIs(t, err, ErrBindingMismatch)

				var mismatch *MismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, tt.missing, mismatch.Missing)
				assert.Equal(t, tt.unknown, mismatch.Unknown)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, bound)
			assert.Equal(t, tt.template, bound.Template())

			// Bindings round-trip unmodified.
			for name, value := range tt.bindings {
				got, ok := bound.Bindings().Get(name)
				assert.True(t, ok)
				assert.Equal(t, value, got)
			}
		})
	}
}

func TestPlanRewrite(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		dialect  dialect.Dialect
		sql      string
		names    []string
	}{
		{
			name:     "PostgresOrdinal",
			template: "SELECT * FROM users WHERE age > :min AND age < :max",
			dialect:  dialect.NewPostgresDialect(),
			sql:      "SELECT * FROM users WHERE age > $1 AND age < $2",
			names:    []string{"min", "max"},
		},
		{
			name:     "PostgresReuseSameSlot",
			template: "SELECT * FROM users WHERE first_name = :name OR last_name = :name",
			dialect:  dialect.NewPostgresDialect(),
			sql:      "SELECT * FROM users WHERE first_name = $1 OR last_name = $1",
			names:    []string{"name"},
		},
		{
			name:     "MySQLMarkers",
			template: "SELECT * FROM users WHERE age > :min AND age < :max",
			dialect:  dialect.NewMySQLDialect(),
			sql:      "SELECT * FROM users WHERE age > ? AND age < ?",
			names:    []string{"min", "max"},
		},
		{
			name:     "MySQLReuseDuplicatesArg",
			template: "SELECT * FROM users WHERE first_name = :name OR last_name = :name",
			dialect:  dialect.NewMySQLDialect(),
			sql:      "SELECT * FROM users WHERE first_name = ? OR last_name = ?",
			names:    []string{"name", "name"},
		},
		{
			name:     "SQLiteMarkers",
			template: "SELECT * FROM users WHERE id = :id",
			dialect:  dialect.NewSQLiteDialect(),
			sql:      "SELECT * FROM users WHERE id = ?",
			names:    []string{"id"},
		},
		{
			name:     "CastSurvivesRewrite",
			template: "SELECT id::text FROM users WHERE id = :id",
			dialect:  dialect.NewPostgresDialect(),
			sql:      "SELECT id::text FROM users WHERE id = $1",
			names:    []string{"id"},
		},
		{
			name:     "QuotedColonUntouched",
			template: "SELECT ':keep' FROM users WHERE id = :id",
			dialect:  dialect.NewPostgresDialect(),
			sql:      "SELECT ':keep' FROM users WHERE id = $1",
			names:    []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan(tt.template, tt.dialect)
			assert.Equal(t, tt.sql, plan.SQL)
			assert.Equal(t, tt.names, plan.Names)
		})
	}
}

func TestRewriteNeverContainsBoundValue(t *testing.T) {
	hostile := `'; DROP TABLE users;--`
	template := Template("SELECT * FROM users WHERE first_name LIKE :name")

	bound, err := Bind(template, NewBindings().Set("name", hostile))
	require.NoError(t, err)

	for _, d := range []dialect.Dialect{
		dialect.NewPostgresDialect(),
		dialect.NewMySQLDialect(),
		dialect.NewSQLiteDialect(),
	} {
		sqlText, args := bound.Rewrite(d)
		assert.NotContains(t, sqlText, hostile)
		assert.NotContains(t, sqlText, "DROP TABLE")
		require.Len(t, args, 1)
		assert.Equal(t, hostile, args[0])
	}
}

func TestRewriteIdempotent(t *testing.T) {
	bound, err := Bind(
		"SELECT * FROM users WHERE age > :min",
		NewBindings().Set("min", 21),
	)
	require.NoError(t, err)

	d := dialect.NewPostgresDialect()
	sql1, args1 := bound.Rewrite(d)
	sql2, args2 := bound.Rewrite(d)
	assert.Equal(t, sql1, sql2)
	assert.Equal(t, args1, args2)
}

func TestFromMapDeterministicOrder(t *testing.T) {
	m := map[string]any{"zeta": 1, "alpha": 2, "mid": 3}
	for i := 0; i < 10; i++ {
		b := FromMap(m)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, b.Names())
	}
}

func TestBindingsSetReplacesWithoutReorder(t *testing.T) {
	b := NewBindings().Set("a", 1).Set("b", 2).Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, b.Names())
	v, ok := b.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, b.Len())
}

func TestMismatchErrorMessage(t *testing.T) {
	err := &MismatchError{Missing: []string{"a"}, Unknown: []string{"b"}}
	msg := err.Error()
	assert.True(t, strings.Contains(msg, "missing bindings: a"))
	assert.True(t, strings.Contains(msg, "unknown bindings: b"))
}
