package dataset

import "tanvet/internal/tangram"

// Validate cross-checks the two sets against the mapping table and
// returns the first violation, wrapped with enough context to locate the
// offending hand-authored file. A nil return means the whole dataset is
// consistent.
//
// Phase 1 walks each set in insertion order: every entry must be
// syntactically valid and must appear in the mapping (source set among
// the mapping's sources, target set among its targets). Phase 2 walks
// the mapping in row order, skipping rows with an empty target, and runs
// the pairwise check on every complete pair.
func Validate(src, dst *Set, m *Mapping) error {
	for _, set := range []*Set{src, dst} {
		inMapping := m.HasSource
		if set == dst {
			inMapping = m.HasTarget
		}

		for _, name := range set.Names() {
			enc, _ := set.Get(name)
			if err := tangram.Validate(enc); err != nil {
				return &EntryError{Set: set.Name(), Entry: name, Err: err}
			}

			if !inMapping(name) {
				return &UnmappedError{Set: set.Name(), Entry: name}
			}
		}
	}

	for _, p := range m.Pairs() {
		// Rows without a target counterpart are intentionally incomplete.
		if p.Target == "" {
			continue
		}

		srcEnc, ok := src.Get(p.Source)
		if !ok {
			return &MissingError{Set: src.Name(), Entry: p.Source}
		}

		dstEnc, ok := dst.Get(p.Target)
		if !ok {
			return &MissingError{Set: dst.Name(), Entry: p.Target}
		}

		if err := tangram.ValidatePair(srcEnc, dstEnc); err != nil {
			return &PairEntryError{Source: p.Source, Target: p.Target, Err: err}
		}
	}

	return nil
}
