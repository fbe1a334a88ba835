package bind

import "sort"

// Bindings is an ordered mapping from placeholder name to a scalar value.
// Insertion order is preserved; setting an existing name replaces the value
// without reordering. A nil value is legal and is transmitted as a typed NULL.
type Bindings struct {
	names  []string
	values map[string]any
}

// NewBindings returns an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{values: make(map[string]any)}
}

// FromMap builds Bindings from a plain map. Names are ordered
// lexicographically so the result is deterministic.
func FromMap(m map[string]any) *Bindings {
	b := NewBindings()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.Set(name, m[name])
	}
	return b
}

// Set adds or replaces a binding and returns the receiver for chaining.
func (b *Bindings) Set(name string, value any) *Bindings {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
	return b
}

// Get returns the value bound to name.
func (b *Bindings) Get(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Names returns the bound names in insertion order.
func (b *Bindings) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Len returns the number of bound names.
func (b *Bindings) Len() int {
	return len(b.names)
}
