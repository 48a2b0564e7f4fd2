package dataset

// Pair is one row of the mapping table. An empty Target means the target
// counterpart has not been authored yet; such rows are skipped during
// pairwise validation and rendering of the target side.
type Pair struct {
	Source string
	Target string
}

// Mapping is the insertion-ordered source-name to target-name table.
type Mapping struct {
	pairs   []Pair
	bySrc   map[string]int
	targets map[string]struct{}
}

// NewMapping creates an empty mapping table.
func NewMapping() *Mapping {
	return &Mapping{
		bySrc:   map[string]int{},
		targets: map[string]struct{}{},
	}
}

// Add appends a row. A duplicate source name replaces the earlier row's
// target while keeping its position.
func (m *Mapping) Add(source, target string) {
	if i, ok := m.bySrc[source]; ok {
		m.pairs[i].Target = target
	} else {
		m.bySrc[source] = len(m.pairs)
		m.pairs = append(m.pairs, Pair{Source: source, Target: target})
	}

	if target != "" {
		m.targets[target] = struct{}{}
	}
}

// Pairs returns the rows in insertion order. The slice is shared; do not
// modify it.
func (m *Mapping) Pairs() []Pair {
	return m.pairs
}

// Target returns the target name mapped to source.
func (m *Mapping) Target(source string) (string, bool) {
	i, ok := m.bySrc[source]
	if !ok {
		return "", false
	}

	return m.pairs[i].Target, true
}

// HasSource reports whether name appears among the mapping's source names.
func (m *Mapping) HasSource(name string) bool {
	_, ok := m.bySrc[name]
	return ok
}

// HasTarget reports whether name appears among the mapping's target names.
func (m *Mapping) HasTarget(name string) bool {
	_, ok := m.targets[name]
	return ok
}

// Len returns the number of rows.
func (m *Mapping) Len() int {
	return len(m.pairs)
}
