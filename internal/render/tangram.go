package render

import (
	"github.com/gogpu/gg"

	"tanvet/internal/tangram"
)

// triangleInset keeps the arrow triangle off the cell outline.
const triangleInset = 1

// drawTangram draws one tangram as a 2x3 grid of cells with its top-left
// corner at (x, y). Color cells are solid; arrow cells are white with a
// black triangle whose missing corner points the arrow's direction.
func drawTangram(dc *gg.Context, x, y, square float64, enc tangram.Encoding) error {
	for i := 0; i < len(enc); i++ {
		row, col := i/3, i%3
		cx := x + float64(col)*square
		cy := y + float64(row)*square

		c := enc[i]
		if tangram.IsColor(c) {
			if err := fillRect(dc, cx, cy, square, square, palette[c], true); err != nil {
				return err
			}

			continue
		}

		if err := fillRect(dc, cx, cy, square, square, white, true); err != nil {
			return err
		}

		if err := drawArrow(dc, cx, cy, square, c); err != nil {
			return err
		}
	}

	return nil
}

// drawArrow fills the triangle for an arrow cell. The four inset cell
// corners are taken counterclockwise from top-left; dropping the corner
// the arrow points at leaves the triangle whose point gives the
// direction.
func drawArrow(dc *gg.Context, x, y, square float64, arrow byte) error {
	x0, y0 := x+triangleInset, y+triangleInset
	x1, y1 := x+square-triangleInset, y+square-triangleInset

	corners := [][2]float64{
		{x0, y0}, // top-left
		{x0, y1}, // bottom-left
		{x1, y1}, // bottom-right
		{x1, y0}, // top-right
	}

	var drop int

	switch arrow {
	case 'U':
		drop = 3
	case 'S':
		drop = 2
	case 'D':
		drop = 1
	default: // 'P'
		drop = 0
	}

	corners = append(corners[:drop], corners[drop+1:]...)

	dc.MoveTo(corners[0][0], corners[0][1])
	dc.LineTo(corners[1][0], corners[1][1])
	dc.LineTo(corners[2][0], corners[2][1])
	dc.ClosePath()
	dc.SetColor(black)

	return dc.Fill()
}
