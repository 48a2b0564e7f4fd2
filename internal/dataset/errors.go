package dataset

import "fmt"

// EntryError wraps a syntactic failure with the set and entry that
// triggered it.
type EntryError struct {
	Set   string
	Entry string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("bad solo %s/%s: %v", e.Set, e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// UnmappedError reports a set entry that does not appear in the mapping
// table (among its source names for the source set, target names for the
// target set).
type UnmappedError struct {
	Set   string
	Entry string
}

func (e *UnmappedError) Error() string {
	return fmt.Sprintf("tangram not in mapping: %s/%s", e.Set, e.Entry)
}

// MissingError reports a mapping row that names a set entry which does
// not exist.
type MissingError struct {
	Set   string
	Entry string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing %s tangram %s", e.Set, e.Entry)
}

// PairEntryError wraps a pairwise consistency failure with the names of
// both entries in the pair.
type PairEntryError struct {
	Source string
	Target string
	Err    error
}

func (e *PairEntryError) Error() string {
	return fmt.Sprintf("bad pair %s/%s: %v", e.Source, e.Target, e.Err)
}

func (e *PairEntryError) Unwrap() error {
	return e.Err
}
