package render

import (
	"fmt"
	"image/color"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gg"

	"tanvet/internal/dataset"
	"tanvet/internal/tangram"
)

// gridColorways lists every possible sorted wz/codm color pairing, in
// bit order: colorway k paints pairing j black when bit j of k is set.
var gridColorways = [6]string{"YY", "RR", "BB", "BR", "BY", "RY"}

// gridBands is one band per 6-bit colorway.
const gridBands = 64

// TestGrid renders one plan: 64 vertically stacked copies of the layout,
// one per colorway, each cell black or white by its color pairing's bit.
// Arrow cells and unmapped tangrams are gray in every band. The sheet is
// written as <plan name>.png.
func (r *Renderer) TestGrid(plan Plan, wz, codm *dataset.Set, m *dataset.Mapping) error {
	names := sourceNames(m)

	var layout Layout

	switch plan.Order {
	case OrderStriped:
		layout = StripedChunks(names, plan.Rows)
	case OrderSequential:
		layout = SequentialChunks(names, plan.Rows)
	default:
		return errors.Newf("plan %s: unknown order %q", plan.Name, plan.Order)
	}

	gw, gh, err := layout.Dims(r.Square)
	if err != nil {
		return errors.Wrapf(err, "plan %s", plan.Name)
	}

	border := float64(r.Border)
	bandH := float64(gh) + 2*border
	w := float64(gw) + 2*border
	h := gridBands * bandH

	dc := gg.NewContext(int(w), int(h))
	if err := frame(dc, 0, 0, w, h, border, black); err != nil {
		return err
	}

	for band := 0; band < gridBands; band++ {
		translate := colorwayTranslate(band)

		y := float64(band)*bandH + border
		if err := r.drawTranslated(dc, border, y, layout, wz, codm, m, translate); err != nil {
			return err
		}
	}

	return r.save(dc, fmt.Sprintf("%s.png", plan.Name))
}

// colorwayTranslate builds the translation for one 6-bit colorway.
func colorwayTranslate(bits int) TranslationFunc {
	colors := map[string]color.RGBA{}

	for j, pairing := range gridColorways {
		if bits&(1<<(len(gridColorways)-1-j)) != 0 {
			colors[pairing] = black
		} else {
			colors[pairing] = white
		}
	}

	return func(wzSym, codmSym byte) color.RGBA {
		if codmSym == 0 || tangram.IsArrow(wzSym) {
			return gray
		}

		return colors[pairKey(wzSym, codmSym)]
	}
}
