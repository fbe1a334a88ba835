package exec

import "github.com/querylab/qbind/database"

// ResultSet holds the rows of one successful execution, preserving the
// database's column order and declared names. It is fully materialized: the
// underlying cursor is consumed and closed before Execute returns.
type ResultSet struct {
	columns []string
	records []Record
}

// Record is one row: column names in database order plus the scanned values.
type Record struct {
	columns []string
	values  []any
}

func (r Record) Columns() []string {
	return r.columns
}

// Get returns the value for a column by name.
func (r Record) Get(name string) (any, bool) {
	for i, col := range r.columns {
		if col == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// Value returns the value at the given column position.
func (r Record) Value(i int) any {
	return r.values[i]
}

// Values returns the row values in column order.
func (r Record) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// NewResultSet builds a result set directly from rows, mainly for fakes and
// tests.
func NewResultSet(columns []string, rows [][]any) *ResultSet {
	rs := &ResultSet{columns: columns}
	for _, row := range rows {
		values := make([]any, len(row))
		copy(values, row)
		rs.records = append(rs.records, Record{columns: columns, values: values})
	}
	return rs
}

func (rs *ResultSet) Columns() []string {
	return rs.columns
}

func (rs *ResultSet) Len() int {
	return len(rs.records)
}

func (rs *ResultSet) Record(i int) Record {
	return rs.records[i]
}

// scanRows drains the cursor into a ResultSet. The caller owns closing rows.
func scanRows(rows database.Rows) (*ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		rs.records = append(rs.records, Record{columns: columns, values: values})
	}

	return rs, rows.Err()
}
