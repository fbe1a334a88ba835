// Package dialect describes the vendor-specific syntax the rewriter and
// connectors need: identifier quoting and positional placeholder form.
// Dialects never render values into SQL text.
package dialect

import "fmt"

type Dialect interface {
	// Name is the dialect identifier used in configs ("postgres", "mysql", "sqlite").
	Name() string
	// Driver is the database/sql driver name, empty when the provider does
	// not go through database/sql.
	Driver() string
	QuoteIdentifier(name string) string
	// Placeholder returns the marker for the nth (1-based) argument slot.
	Placeholder(n int) string
}

// ByName resolves a dialect from its config name.
func ByName(name string) (Dialect, error) {
	switch name {
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	case "sqlite", "sqlite3":
		return NewSQLiteDialect(), nil
	default:
		return nil, fmt.Errorf("unknown dialect: %s", name)
	}
}
