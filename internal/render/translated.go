package render

import (
	"image/color"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gg"

	"tanvet/internal/dataset"
	"tanvet/internal/tangram"
)

// TranslationFunc picks the display color for one cell given the wz
// symbol and the codm symbol at the same position. codmSym is zero when
// the wz tangram has no codm counterpart.
type TranslationFunc func(wzSym, codmSym byte) color.RGBA

// translatedColor is the translated-reference colorway: equal colors
// keep their color, unequal pairs get a fixed blend, arrows and unmapped
// tangrams stay white.
func translatedColor(wzSym, codmSym byte) color.RGBA {
	if codmSym == 0 || tangram.IsArrow(wzSym) {
		return white
	}

	if wzSym == codmSym {
		return palette[wzSym]
	}

	return blends[pairKey(wzSym, codmSym)]
}

// TranslatedReference renders every wz tangram cell-by-cell through the
// translated colorway, six striped rows, and writes
// translated_reference.png.
func (r *Renderer) TranslatedReference(wz, codm *dataset.Set, m *dataset.Mapping) error {
	layout := StripedChunks(sourceNames(m), refRows)

	gw, gh, err := layout.Dims(r.Square)
	if err != nil {
		return err
	}

	border := float64(r.Border)
	w := float64(gw) + 2*border
	h := float64(gh) + 2*border

	dc := gg.NewContext(int(w), int(h))
	if err := frame(dc, 0, 0, w, h, border, black); err != nil {
		return err
	}

	if err := r.drawTranslated(dc, border, border, layout, wz, codm, m, translatedColor); err != nil {
		return err
	}

	return r.save(dc, "translated_reference.png")
}

// drawTranslated paints a layout of tangrams, each cell colored by
// translate instead of its own symbol.
func (r *Renderer) drawTranslated(
	dc *gg.Context,
	x, y float64,
	layout Layout,
	wz, codm *dataset.Set,
	m *dataset.Mapping,
	translate TranslationFunc,
) error {
	sq := float64(r.Square)

	for rowIdx, rowNames := range layout {
		ty := y + float64(rowIdx)*2*sq

		for colIdx, name := range rowNames {
			wzEnc, ok := wz.Get(name)
			if !ok {
				return errors.Newf("layout names unknown wz tangram %s", name)
			}

			var codmEnc tangram.Encoding

			if target, ok := m.Target(name); ok && target != "" {
				codmEnc, _ = codm.Get(target)
			}

			tx := x + float64(colIdx)*3*sq

			for i := 0; i < len(wzEnc); i++ {
				var codmSym byte
				if i < len(codmEnc) {
					codmSym = codmEnc[i]
				}

				cellX := tx + float64(i%3)*sq
				cellY := ty + float64(i/3)*sq

				if err := fillRect(dc, cellX, cellY, sq, sq, translate(wzEnc[i], codmSym), true); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
