package render

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gg"
)

// Renderer writes diagnostic images for a validated dataset.
type Renderer struct {
	// Square is the side length in pixels of one tangram cell.
	Square int
	// Border is the outer border width of translated and grid sheets.
	Border int
	// OutDir receives the PNG files; it is created on first save.
	OutDir string
}

// New creates a renderer.
func New(square, border int, outDir string) *Renderer {
	return &Renderer{Square: square, Border: border, OutDir: outDir}
}

// save writes the context to OutDir/name.
func (r *Renderer) save(dc *gg.Context, name string) error {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", r.OutDir)
	}

	path := filepath.Join(r.OutDir, name)
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}

	return nil
}

// fillRect fills an axis-aligned rectangle, optionally tracing a 1px
// black cell outline around it.
func fillRect(dc *gg.Context, x, y, w, h float64, fill color.Color, outline bool) error {
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(fill)

	if !outline {
		return dc.Fill()
	}

	if err := dc.FillPreserve(); err != nil {
		return err
	}

	dc.SetColor(black)
	dc.SetLineWidth(1)

	return dc.Stroke()
}

// frame paints a rectangle with the frame color, then restores the
// interior to white, leaving a solid border of the given width.
func frame(dc *gg.Context, x, y, w, h, width float64, col color.Color) error {
	if err := fillRect(dc, x, y, w, h, col, false); err != nil {
		return err
	}

	return fillRect(dc, x+width, y+width, w-2*width, h-2*width, white, false)
}
