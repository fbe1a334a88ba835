// Package project maps result sets into record sequences, optionally
// reshaping individual columns for consumption.
package project

import (
	"github.com/querylab/qbind/exec"
)

// Transform rewrites one column value.
type Transform func(any) any

// Option configures a projection.
type Option func(*Projection)

// Apply installs a transform for the named column. Columns without a
// transform pass through untouched.
func Apply(column string, fn Transform) Option {
	return func(p *Projection) {
		p.transforms[column] = fn
	}
}

// Projection is a single-pass iterator over a result set's records. Once
// drained it cannot be rewound; restarting means re-executing the query,
// since the underlying cursor was consumed when the result set was built.
type Projection struct {
	rs         *exec.ResultSet
	transforms map[string]Transform
	idx        int
}

// Project wraps a result set. Consuming the projection has no side effect
// beyond advancing its own position.
func Project(rs *exec.ResultSet, opts ...Option) *Projection {
	p := &Projection{
		rs:         rs,
		transforms: make(map[string]Transform),
		idx:        -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Columns returns the projected column names in database order.
func (p *Projection) Columns() []string {
	return p.rs.Columns()
}

// Next advances to the next record, returning false when the sequence is
// exhausted.
func (p *Projection) Next() bool {
	if p.idx+1 >= p.rs.Len() {
		return false
	}
	p.idx++
	return true
}

// Record returns the current record with transforms applied.
func (p *Projection) Record() map[string]any {
	rec := p.rs.Record(p.idx)
	out := make(map[string]any, len(p.rs.Columns()))
	for i, col := range p.rs.Columns() {
		v := rec.Value(i)
		if fn, ok := p.transforms[col]; ok {
			v = fn(v)
		}
		out[col] = v
	}
	return out
}

// Values returns the current record's values in column order, transformed.
func (p *Projection) Values() []any {
	rec := p.rs.Record(p.idx)
	out := make([]any, len(p.rs.Columns()))
	for i, col := range p.rs.Columns() {
		v := rec.Value(i)
		if fn, ok := p.transforms[col]; ok {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}

// Collect drains the remaining records into a slice.
func (p *Projection) Collect() []map[string]any {
	var out []map[string]any
	for p.Next() {
		out = append(out, p.Record())
	}
	return out
}
