// Package query builds named-placeholder templates fluently. Builders emit a
// bind.Template plus its bindings; validation and execution stay in bind and
// exec. Joins are always explicit: there is no relationship traversal.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/querylab/qbind/bind"
)

// SelectBuilder accumulates the clauses of a SELECT statement. Condition
// fragments are caller-authored SQL with :name placeholders; values arrive
// through Bind and never through string interpolation.
type SelectBuilder struct {
	table    string
	columns  []string
	joins    []string
	wheres   []string
	groupBy  []string
	having   string
	orderBy  []string
	limit    *int
	offset   *int
	bindings *bind.Bindings
}

// Select starts a builder with an explicit projection. No columns means *.
func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{
		columns:  columns,
		bindings: bind.NewBindings(),
	}
}

// From sets the table.
func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Where adds a condition fragment, AND-composed with prior conditions.
func (b *SelectBuilder) Where(cond string) *SelectBuilder {
	b.wheres = append(b.wheres, cond)
	return b
}

// WhereEq is shorthand for column = :column.
func (b *SelectBuilder) WhereEq(column string, value any) *SelectBuilder {
	b.wheres = append(b.wheres, column+" = :"+column)
	b.bindings.Set(column, value)
	return b
}

// Bind attaches a value for a placeholder used in a Where/Having fragment.
func (b *SelectBuilder) Bind(name string, value any) *SelectBuilder {
	b.bindings.Set(name, value)
	return b
}

// Join appends a join clause, e.g. "JOIN orders ON orders.user_id = users.id".
func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	b.joins = append(b.joins, clause)
	return b
}

// GroupBy appends grouping columns.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

// Having sets the HAVING fragment.
func (b *SelectBuilder) Having(cond string) *SelectBuilder {
	b.having = cond
	return b
}

// OrderBy appends ordering terms, e.g. "age DESC".
func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// Build renders the template and returns it with the accumulated bindings.
func (b *SelectBuilder) Build() (bind.Template, *bind.Bindings) {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(b.columns, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	for _, j := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}

	if len(b.wheres) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.wheres, " AND "))
	}

	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}

	if b.having != "" {
		sb.WriteString(" HAVING ")
		sb.WriteString(b.having)
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(*b.limit))
	}

	if b.offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(*b.offset))
	}

	return bind.Template(sb.String()), b.bindings
}

// BuildBound builds and validates in one step.
func (b *SelectBuilder) BuildBound() (*bind.BoundQuery, error) {
	t, bindings := b.Build()
	return bind.Bind(t, bindings)
}

// Aggregate helpers. Each projects a single aggregate expression over the
// table; conditions are added with Where/Bind as usual.

func Count(table string) *SelectBuilder {
	return Select("COUNT(*) AS count").From(table)
}

func Min(table, column string) *SelectBuilder {
	return Select(fmt.Sprintf("MIN(%s) AS min", column)).From(table)
}

func Max(table, column string) *SelectBuilder {
	return Select(fmt.Sprintf("MAX(%s) AS max", column)).From(table)
}

func Avg(table, column string) *SelectBuilder {
	return Select(fmt.Sprintf("AVG(%s) AS avg", column)).From(table)
}

func Sum(table, column string) *SelectBuilder {
	return Select(fmt.Sprintf("SUM(%s) AS sum", column)).From(table)
}
