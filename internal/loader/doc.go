// Package loader reads the hand-authored tandata directory into the
// in-memory dataset: one .txt file per tangram under wz/ and codm/, plus
// mapping.csv relating the two.
package loader
