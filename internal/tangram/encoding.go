package tangram

import "strings"

// Encoding is one tangram: an ordered string of exactly Size symbols,
// read left to right, top row first.
type Encoding string

const (
	// Size is the number of cells in a tangram.
	Size = 6

	// ColorCount and ArrowCount partition the cells of a well-formed tangram.
	ColorCount = 4
	ArrowCount = 2
)

// Colors is the color alphabet.
const Colors = "RYB"

// arrowOpposites maps each arrow symbol to the arrow it must face in a
// paired tangram. The table is involutive: applying it twice is identity.
var arrowOpposites = map[byte]byte{
	'P': 'S',
	'U': 'D',
	'S': 'P',
	'D': 'U',
}

// IsColor reports whether c is a color symbol.
func IsColor(c byte) bool {
	return strings.IndexByte(Colors, c) >= 0
}

// IsArrow reports whether c is an arrow symbol.
func IsArrow(c byte) bool {
	_, ok := arrowOpposites[c]
	return ok
}

// Opposite returns the arrow symbol opposite to c.
// ok is false when c is not an arrow.
func Opposite(c byte) (opp byte, ok bool) {
	opp, ok = arrowOpposites[c]
	return opp, ok
}
