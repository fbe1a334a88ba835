package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Postgres", "postgres", "postgres"},
		{"PostgresAlias", "postgresql", "postgres"},
		{"MySQL", "mysql", "mysql"},
		{"SQLite", "sqlite", "sqlite"},
		{"SQLiteAlias", "sqlite3", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ByName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Name())
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("oracle")
	assert.ErrorContains(t, err, "unknown dialect")
}

func TestPlaceholders(t *testing.T) {
	pg := NewPostgresDialect()
	assert.Equal(t, "$1", pg.Placeholder(1))
	assert.Equal(t, "$12", pg.Placeholder(12))

	my := NewMySQLDialect()
	assert.Equal(t, "?", my.Placeholder(1))
	assert.Equal(t, "?", my.Placeholder(12))

	lite := NewSQLiteDialect()
	assert.Equal(t, "?", lite.Placeholder(5))
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"first_name"`, NewPostgresDialect().QuoteIdentifier("first_name"))
	assert.Equal(t, "`first_name`", NewMySQLDialect().QuoteIdentifier("first_name"))
	assert.Equal(t, `"first_name"`, NewSQLiteDialect().QuoteIdentifier("first_name"))
}

func TestQuoteIdentifierEscapesEmbeddedQuotes(t *testing.T) {
	// A quote inside the name must not close the identifier and leave the
	// remainder as executable SQL.
	hostile := `t"); DROP TABLE users; --`
	assert.Equal(t, `"t""); DROP TABLE users; --"`, NewPostgresDialect().QuoteIdentifier(hostile))
	assert.Equal(t, `"t""); DROP TABLE users; --"`, NewSQLiteDialect().QuoteIdentifier(hostile))
	assert.Equal(t, "`t`` (x)`", NewMySQLDialect().QuoteIdentifier("t` (x)"))
}

func TestDriverNames(t *testing.T) {
	// Postgres is served by pgxpool, not database/sql.
	assert.Equal(t, "", NewPostgresDialect().Driver())
	assert.Equal(t, "mysql", NewMySQLDialect().Driver())
	assert.Equal(t, "sqlite3", NewSQLiteDialect().Driver())
}
