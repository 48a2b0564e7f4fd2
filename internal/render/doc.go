// Package render draws the diagnostic PNG images: a reference sheet of
// every mapped pair, a translated-reference sheet showing how colors
// shift between the two sets, and stacks of binary test grids covering
// every colorway of the six possible color pairings.
//
// Rendering runs after validation; every renderer assumes the dataset
// already passed the full consistency check.
package render
