package dialect

import "strings"

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return MySQL{}
}

func (MySQL) Name() string {
	return "mysql"
}

func (MySQL) Driver() string {
	return "mysql"
}

func (MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (MySQL) Placeholder(n int) string {
	return "?"
}
