package schema

import (
	"context"
	"fmt"

	"github.com/querylab/qbind/bind"
	"github.com/querylab/qbind/connector"
	"github.com/querylab/qbind/exec"
)

// Column is one column definition read back from a live database.
type Column struct {
	Name     string
	DataType string
	Nullable bool
}

const (
	pgTablesQuery = bind.Template(`SELECT table_name FROM information_schema.tables
		WHERE table_schema = :schema AND table_type = 'BASE TABLE' ORDER BY table_name`)
	pgColumnsQuery = bind.Template(`SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = :schema AND table_name = :table ORDER BY ordinal_position`)

	myTablesQuery = bind.Template(`SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() ORDER BY table_name`)
	myColumnsQuery = bind.Template(`SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = :table ORDER BY ordinal_position`)

	liteTablesQuery = bind.Template(`SELECT name FROM sqlite_master
		WHERE type = :type AND name NOT LIKE 'sqlite_%' ORDER BY name`)
)

// Tables lists the base tables visible on the connection.
func Tables(ctx context.Context, conn connector.Connection) ([]string, error) {
	var rs *exec.ResultSet
	var err error

	switch conn.Dialect().Name() {
	case "postgres":
		rs, err = exec.Query(ctx, conn, pgTablesQuery, map[string]any{"schema": "public"})
	case "mysql":
		rs, err = exec.Query(ctx, conn, myTablesQuery, nil)
	case "sqlite":
		rs, err = exec.Query(ctx, conn, liteTablesQuery, map[string]any{"type": "table"})
	default:
		return nil, fmt.Errorf("schema reflection not supported for dialect %s", conn.Dialect().Name())
	}
	if err != nil {
		return nil, err
	}

	tables := make([]string, 0, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		tables = append(tables, asString(rs.Record(i).Value(0)))
	}
	return tables, nil
}

// Columns reads a table's column definitions from the live database rather
// than from declared metadata.
func Columns(ctx context.Context, conn connector.Connection, table string) ([]Column, error) {
	switch conn.Dialect().Name() {
	case "postgres":
		rs, err := exec.Query(ctx, conn, pgColumnsQuery, map[string]any{"schema": "public", "table": table})
		if err != nil {
			return nil, err
		}
		return infoSchemaColumns(rs), nil
	case "mysql":
		rs, err := exec.Query(ctx, conn, myColumnsQuery, map[string]any{"table": table})
		if err != nil {
			return nil, err
		}
		return infoSchemaColumns(rs), nil
	case "sqlite":
		return sqliteColumns(ctx, conn, table)
	default:
		return nil, fmt.Errorf("schema reflection not supported for dialect %s", conn.Dialect().Name())
	}
}

func infoSchemaColumns(rs *exec.ResultSet) []Column {
	cols := make([]Column, 0, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		rec := rs.Record(i)
		cols = append(cols, Column{
			Name:     asString(rec.Value(0)),
			DataType: asString(rec.Value(1)),
			Nullable: asString(rec.Value(2)) == "YES",
		})
	}
	return cols
}

func sqliteColumns(ctx context.Context, conn connector.Connection, table string) ([]Column, error) {
	// PRAGMA does not accept bound parameters; the table name is an
	// identifier and is quoted as one.
	q := bind.Template("PRAGMA table_info(" + conn.Dialect().QuoteIdentifier(table) + ")")
	rs, err := exec.Query(ctx, conn, q, nil)
	if err != nil {
		return nil, err
	}

	cols := make([]Column, 0, rs.Len())
	for i := 0; i < rs.Len(); i++ {
		rec := rs.Record(i)
		name, _ := rec.Get("name")
		dataType, _ := rec.Get("type")
		notNull, _ := rec.Get("notnull")
		cols = append(cols, Column{
			Name:     asString(name),
			DataType: asString(dataType),
			Nullable: asInt64(notNull) == 0,
		})
	}
	return cols, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	default:
		return 0
	}
}
