// SPDX-License-Identifier: MIT

package records

import (
	"fmt"
	"strings"
)

// Fixed attribute names resolved against Entry fields before the Attrs
// map is consulted.
const (
	AttrLabel = "label"
	AttrValue = "value"
)

// Entry is one immutable record: a label, a numeric value and optional
// extra attributes describing where the value came from. Stores copy
// the Attrs map on ingestion; treat entries read from a store as
// read-only.
type Entry struct {
	// Label identifies what the value measures.
	Label string

	// Value is the recorded quantity.
	Value float64

	// Attrs holds extra descriptive attributes, keyed by name.
	Attrs map[string]any
}

// Attr resolves an attribute by name: "label" and "value" map to the
// fixed fields, anything else is looked up in Attrs. The second result
// reports whether the attribute exists.
func (e Entry) Attr(name string) (any, bool) {
	switch name {
	case AttrLabel:
		return e.Label, true
	case AttrValue:
		return e.Value, true
	}
	v, ok := e.Attrs[name]

	return v, ok
}

// String renders the entry as label=value plus any extra attributes.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%v", e.Label, e.Value)
	for k, v := range e.Attrs {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}

	return b.String()
}

// clone returns the entry with its own copy of the Attrs map.
func (e Entry) clone() Entry {
	if e.Attrs == nil {
		return e
	}
	attrs := make(map[string]any, len(e.Attrs))
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	e.Attrs = attrs

	return e
}

// Constraint restricts one attribute to a set of accepted values.
// Build constraints with Where.
type Constraint struct {
	attr     string
	accepted []any
}

// Where accepts entries whose named attribute equals any of the given
// values. A single value matches exactly; several values act as a set.
// Entries lacking the attribute never match, and a constraint with no
// values matches nothing.
func Where(attr string, accepted ...any) Constraint {
	return Constraint{attr: attr, accepted: accepted}
}

// matches reports whether the entry satisfies the constraint.
func (c Constraint) matches(e Entry) bool {
	v, ok := e.Attr(c.attr)
	if !ok {
		return false
	}
	for _, want := range c.accepted {
		if v == want {
			return true
		}
	}

	return false
}

// Store is an ordered, append-only collection of entries. The zero
// value is empty and ready to use.
type Store struct {
	entries []Entry
}

// NewStore creates a store holding the given entries, in order.
func NewStore(entries ...Entry) *Store {
	s := &Store{}
	s.Add(entries...)

	return s
}

// Add appends one or more entries. Each entry's attribute map is copied
// so the store never shares mutable state with the caller.
func (s *Store) Add(entries ...Entry) {
	for _, e := range entries {
		s.entries = append(s.entries, e.clone())
	}
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// At returns the entry at position i. Panics if i is out of range, like
// a slice index.
func (s *Store) At(i int) Entry { return s.entries[i] }

// Filter returns a new store holding the entries that satisfy every
// constraint, in their original order. Attributes with no constraint
// match everything. The result shares no slice state with the receiver.
// Complexity: O(entries x constraints).
func (s *Store) Filter(constraints ...Constraint) *Store {
	out := &Store{}
	for _, e := range s.entries {
		keep := true
		for _, c := range constraints {
			if !c.matches(e) {
				keep = false

				break
			}
		}
		if keep {
			out.entries = append(out.entries, e)
		}
	}

	return out
}

// ValuesOf returns the named attribute of every entry, positionally:
// the i-th element belongs to the i-th entry, nil where the entry lacks
// the attribute.
func (s *Store) ValuesOf(attr string) []any {
	out := make([]any, len(s.entries))
	for i, e := range s.entries {
		if v, ok := e.Attr(attr); ok {
			out[i] = v
		}
	}

	return out
}

// Values returns every entry's Value field, in order.
func (s *Store) Values() []float64 {
	out := make([]float64, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Value
	}

	return out
}

// String renders the store as a bracketed entry list.
func (s *Store) String() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
