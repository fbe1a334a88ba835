// Package schema turns struct declarations into table metadata and reads
// column definitions back from live databases. Metadata here is explicit
// data, not an object graph: there is no relationship traversal and no lazy
// loading.
package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Meta describes one struct-to-table mapping.
type Meta struct {
	Type      reflect.Type
	TableName string
	Fields    []Field
}

// Field maps one exported struct field to a column.
type Field struct {
	Name   string
	Column string
	Index  int
}

// TableNamer overrides the derived table name.
type TableNamer interface {
	TableName() string
}

// Introspect builds metadata for a struct type. Pointers are dereferenced;
// anything that is not a struct is an error. Fields tagged `db:"-"` are
// skipped, a `db:"name"` tag overrides the derived column name, and
// unexported fields are ignored.
func Introspect(t reflect.Type) (*Meta, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: expected struct type, got %s", t.Kind())
	}

	meta := &Meta{
		Type:      t,
		TableName: TableName(t),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("db")
		if tag == "-" {
			continue
		}
		column := tag
		if idx := strings.Index(column, ","); idx >= 0 {
			column = column[:idx]
		}
		if column == "" {
			column = SnakeCase(f.Name)
		}
		meta.Fields = append(meta.Fields, Field{
			Name:   f.Name,
			Column: column,
			Index:  i,
		})
	}

	return meta, nil
}

// IntrospectValue is Introspect on a value's dynamic type, honoring
// TableNamer overrides.
func IntrospectValue(v any) (*Meta, error) {
	meta, err := Introspect(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	if namer, ok := v.(TableNamer); ok {
		meta.TableName = namer.TableName()
	}
	return meta, nil
}

// Columns returns the mapped column names in field order.
func (m *Meta) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		cols[i] = f.Column
	}
	return cols
}
