package render

import "image/color"

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	gray  = color.RGBA{R: 127, G: 127, B: 127, A: 255}

	// pairFrame outlines each wz/codm pair on the reference sheet.
	pairFrame = color.RGBA{R: 235, G: 52, B: 223, A: 255}
)

// palette maps color symbols to display colors.
var palette = map[byte]color.RGBA{
	'R': {R: 255, A: 255},
	'B': {B: 255, A: 255},
	'Y': {R: 255, G: 255, A: 255},
}

// blends maps unequal wz/codm color pairings (keyed by the two symbols in
// sorted order) to the display colors used on translated sheets.
var blends = map[string]color.RGBA{
	"BR": {R: 255, B: 255, A: 255},
	"BY": {R: 47, G: 255, A: 255},
	"RY": {R: 255, G: 123, A: 255},
}

// pairKey returns the two symbols in sorted order, the key shape used by
// blends and by grid colorways.
func pairKey(a, b byte) string {
	if a > b {
		a, b = b, a
	}

	return string([]byte{a, b})
}
