package query

import (
	"sort"
	"strings"

	"github.com/querylab/qbind/bind"
)

// InsertInto renders an INSERT with one placeholder per column. Column order
// is deterministic (lexicographic) so the same values map always produces the
// same template.
func InsertInto(table string, values map[string]any) (bind.Template, *bind.Bindings) {
	columns := sortedKeys(values)
	bindings := bind.NewBindings()

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES (")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(":" + col)
		bindings.Set(col, values[col])
	}
	sb.WriteString(")")

	return bind.Template(sb.String()), bindings
}

// UpdateBuilder accumulates an UPDATE statement.
type UpdateBuilder struct {
	table    string
	sets     []string
	wheres   []string
	bindings *bind.Bindings
}

// Update starts an UPDATE builder for the table.
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table, bindings: bind.NewBindings()}
}

// Set assigns column = :column. Set and Where placeholders share one
// namespace; qualify with distinct names when a column appears in both,
// e.g. Where("id = :match_id").Bind("match_id", v).
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, column+" = :"+column)
	b.bindings.Set(column, value)
	return b
}

// Where adds a condition fragment, AND-composed.
func (b *UpdateBuilder) Where(cond string) *UpdateBuilder {
	b.wheres = append(b.wheres, cond)
	return b
}

// Bind attaches a value for a Where placeholder.
func (b *UpdateBuilder) Bind(name string, value any) *UpdateBuilder {
	b.bindings.Set(name, value)
	return b
}

// Build renders the template and bindings.
func (b *UpdateBuilder) Build() (bind.Template, *bind.Bindings) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	if len(b.wheres) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.wheres, " AND "))
	}
	return bind.Template(sb.String()), b.bindings
}

// BuildBound builds and validates in one step.
func (b *UpdateBuilder) BuildBound() (*bind.BoundQuery, error) {
	t, bindings := b.Build()
	return bind.Bind(t, bindings)
}

// DeleteFrom renders a DELETE constrained by equality on the given columns.
func DeleteFrom(table string, match map[string]any) (bind.Template, *bind.Bindings) {
	columns := sortedKeys(match)
	bindings := bind.NewBindings()

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(table)
	if len(columns) > 0 {
		sb.WriteString(" WHERE ")
		for i, col := range columns {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString(col + " = :" + col)
			bindings.Set(col, match[col])
		}
	}

	return bind.Template(sb.String()), bindings
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
