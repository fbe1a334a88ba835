package dialect

import (
	"strconv"
	"strings"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return Postgres{}
}

func (Postgres) Name() string {
	return "postgres"
}

func (Postgres) Driver() string {
	return "" // served by pgxpool, not database/sql
}

func (Postgres) QuoteIdentifier(name string) string {
	// Embedded quotes are doubled so the name can never close the identifier
	// and leave trailing text as SQL.
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
