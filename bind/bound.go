package bind

import (
	"strings"

	"github.com/querylab/qbind/dialect"
)

// BoundQuery pairs a template with a binding set that has been validated
// against it: every placeholder has a value and every value has a placeholder.
type BoundQuery struct {
	template Template
	bindings *Bindings
}

// Bind validates bindings against the template's placeholders. It is pure:
// no database interaction happens here. On any disagreement it returns a
// *MismatchError matching ErrBindingMismatch.
func Bind(template Template, bindings *Bindings) (*BoundQuery, error) {
	if bindings == nil {
		bindings = NewBindings()
	}

	names := template.Names()
	inTemplate := make(map[string]bool, len(names))
	for _, name := range names {
		inTemplate[name] = true
	}

	mismatch := &MismatchError{}
	for _, name := range names {
		if _, ok := bindings.Get(name); !ok {
			mismatch.Missing = append(mismatch.Missing, name)
		}
	}
	for _, name := range bindings.Names() {
		if !inTemplate[name] {
			mismatch.Unknown = append(mismatch.Unknown, name)
		}
	}
	if len(mismatch.Missing) > 0 || len(mismatch.Unknown) > 0 {
		return nil, mismatch
	}

	return &BoundQuery{template: template, bindings: bindings}, nil
}

// Template returns the original template.
func (q *BoundQuery) Template() Template {
	return q.template
}

// Bindings returns the validated binding set.
func (q *BoundQuery) Bindings() *Bindings {
	return q.bindings
}

// Fingerprint identifies the template (not the bound values).
func (q *BoundQuery) Fingerprint() uint64 {
	return q.template.Fingerprint()
}

// Rewrite produces the vendor SQL and the positional argument list for the
// given dialect. The bound values never appear in the SQL text.
func (q *BoundQuery) Rewrite(d dialect.Dialect) (string, []any) {
	plan := NewPlan(q.template, d)
	return plan.SQL, plan.Args(q.bindings)
}

// Plan is a template rewritten for one dialect: the positional SQL plus the
// placeholder name expected at each argument slot. Plans depend only on the
// template and dialect, so they can be cached and reused across binding sets.
type Plan struct {
	SQL   string
	Names []string
}

// NewPlan rewrites the template's placeholders into the dialect's positional
// syntax. Dialects with ordinal placeholders ($1, $2) reuse one slot per
// unique name; bare-marker dialects (?) get one slot per occurrence.
func NewPlan(t Template, d dialect.Dialect) *Plan {
	ordinal := d.Placeholder(1) != d.Placeholder(2)
	src := string(t)

	var sb strings.Builder
	sb.Grow(len(src))

	plan := &Plan{}
	slots := make(map[string]int)
	last := 0
	scan(src, func(start, end int, name string) {
		sb.WriteString(src[last:start])
		last = end
		if ordinal {
			slot, ok := slots[name]
			if !ok {
				plan.Names = append(plan.Names, name)
				slot = len(plan.Names)
				slots[name] = slot
			}
			sb.WriteString(d.Placeholder(slot))
			return
		}
		plan.Names = append(plan.Names, name)
		sb.WriteString(d.Placeholder(len(plan.Names)))
	})
	sb.WriteString(src[last:])

	plan.SQL = sb.String()
	return plan
}

// Args resolves the plan's argument slots against a binding set. Names absent
// from the bindings resolve to nil; Bind has already rejected that case for
// queries that went through validation.
func (p *Plan) Args(bindings *Bindings) []any {
	if len(p.Names) == 0 {
		return nil
	}
	args := make([]any, len(p.Names))
	for i, name := range p.Names {
		v, _ := bindings.Get(name)
		args[i] = v
	}
	return args
}
