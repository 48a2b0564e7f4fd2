package dataset

import "tanvet/internal/tangram"

// Set is a named, insertion-ordered collection of tangram encodings.
type Set struct {
	name   string
	order  []string
	byName map[string]tangram.Encoding
}

// NewSet creates an empty set. The name ("wz", "codm") is used in error
// messages and diagnostics only; entry names are opaque identifiers.
func NewSet(name string) *Set {
	return &Set{
		name:   name,
		byName: map[string]tangram.Encoding{},
	}
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// Add inserts or replaces an entry. A replaced entry keeps its original
// position in iteration order.
func (s *Set) Add(name string, enc tangram.Encoding) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}

	s.byName[name] = enc
}

// Get returns the encoding for name.
func (s *Set) Get(name string) (tangram.Encoding, bool) {
	enc, ok := s.byName[name]
	return enc, ok
}

// Names returns entry names in insertion order. The slice is shared; do
// not modify it.
func (s *Set) Names() []string {
	return s.order
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.order)
}
