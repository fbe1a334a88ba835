package dialect

import "strings"

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return SQLite{}
}

func (SQLite) Name() string {
	return "sqlite"
}

func (SQLite) Driver() string {
	return "sqlite3"
}

func (SQLite) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (SQLite) Placeholder(n int) string {
	return "?"
}
