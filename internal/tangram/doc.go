// Package tangram defines the 6-symbol tangram encoding and the rules
// a single encoding (and a source/target pair of encodings) must satisfy.
//
// An encoding describes a 2x3 grid of cells. Four cells carry a color
// (R, Y, B) and two carry a white triangle whose point gives a direction
// (P, U, S, D — port, up, starboard, down). Each direction has exactly one
// opposite: P<->S and U<->D.
package tangram
