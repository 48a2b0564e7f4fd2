package render

import (
	"github.com/gogpu/gg"

	"tanvet/internal/dataset"
)

// Reference sheet geometry. The pair border doubles as spacing between
// neighbouring pairs.
const (
	refBorder     = 10
	refPairBorder = 10
	refRows       = 6
)

// Reference renders every mapping row as a framed wz/codm pair, six
// pairs per column, and writes reference.png. Pairs without a codm
// counterpart show only the wz side.
func (r *Renderer) Reference(wz, codm *dataset.Set, m *dataset.Mapping) error {
	pairs := m.Pairs()

	cols := (len(pairs) + refRows - 1) / refRows
	if cols == 0 {
		cols = 1
	}

	sq := float64(r.Square)
	pairW := 6*sq + 2*refPairBorder
	pairH := 2*sq + 2*refPairBorder
	w := 2*refBorder + float64(cols)*pairW
	h := 2*refBorder + refRows*pairH

	dc := gg.NewContext(int(w), int(h))
	if err := frame(dc, 0, 0, w, h, refBorder, black); err != nil {
		return err
	}

	for i, p := range pairs {
		row := i % refRows
		col := i / refRows
		px := refBorder + float64(col)*pairW
		py := refBorder + float64(row)*pairH

		if err := frame(dc, px, py, pairW, pairH, refPairBorder, pairFrame); err != nil {
			return err
		}

		if enc, ok := wz.Get(p.Source); ok {
			if err := drawTangram(dc, px+refPairBorder, py+refPairBorder, sq, enc); err != nil {
				return err
			}
		}

		if p.Target == "" {
			continue
		}

		if enc, ok := codm.Get(p.Target); ok {
			if err := drawTangram(dc, px+refPairBorder+3*sq, py+refPairBorder, sq, enc); err != nil {
				return err
			}
		}
	}

	return r.save(dc, "reference.png")
}
