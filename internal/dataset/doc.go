// Package dataset holds the loaded tangram collections and cross-checks
// them against the mapping table.
//
// Both containers preserve insertion order so a given dataset always
// produces the same first error and the same rendered output.
package dataset
