package render

import (
	"github.com/cockroachdb/errors"

	"tanvet/internal/dataset"
)

// Layout is a grid of source-set entry names, one tangram per cell.
type Layout [][]string

// StripedChunks deals names into n rows round-robin: row i holds
// names[i], names[i+n], names[i+2n], ...
func StripedChunks(names []string, n int) Layout {
	if n <= 0 {
		return nil
	}

	out := make(Layout, 0, n)

	for i := 0; i < n; i++ {
		var row []string
		for j := i; j < len(names); j += n {
			row = append(row, names[j])
		}

		out = append(out, row)
	}

	return out
}

// SequentialChunks splits names into n consecutive runs, earlier rows
// taking the extra element when the split is uneven.
func SequentialChunks(names []string, n int) Layout {
	if n <= 0 {
		return nil
	}

	d, rem := len(names)/n, len(names)%n
	out := make(Layout, 0, n)
	start := 0

	for i := 0; i < n; i++ {
		size := d
		if i < rem {
			size++
		}

		out = append(out, names[start:start+size])
		start += size
	}

	return out
}

// Cols returns the row width, failing when rows are ragged: grid sheets
// need a rectangular layout.
func (l Layout) Cols() (int, error) {
	if len(l) == 0 {
		return 0, nil
	}

	cols := len(l[0])

	for _, row := range l {
		if len(row) != cols {
			return 0, errors.Newf("layout rows must be equal length: %d vs %d", cols, len(row))
		}
	}

	return cols, nil
}

// Dims returns the pixel size of the layout at the given cell size: each
// tangram occupies 3 cells across and 2 down.
func (l Layout) Dims(square int) (w, h int, err error) {
	cols, err := l.Cols()
	if err != nil {
		return 0, 0, err
	}

	return cols * 3 * square, len(l) * 2 * square, nil
}

// sourceNames returns the mapping's source names in row order, the
// canonical layout input.
func sourceNames(m *dataset.Mapping) []string {
	pairs := m.Pairs()
	names := make([]string, len(pairs))

	for i, p := range pairs {
		names[i] = p.Source
	}

	return names
}
