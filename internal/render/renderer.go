//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell states into a single RGBA image and draws it scaled.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA

	// Aged enables first-touched shading.
	Aged bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Frame describes what to paint for one draw call.
type Frame struct {
	W, H       int
	Cells      []uint8
	FirstSteps []uint64
	Steps      uint64
	AntX, AntY int
}

// Blit uploads the frame into the painter image and draws it onto dst. The
// backing image is reallocated when the grid size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, f Frame, scale float64) {
	if len(f.Cells) != f.W*f.H {
		return
	}
	if f.W != gp.w || f.H != gp.h {
		gp.resize(f.W, f.H)
	}
	if gp.Aged {
		fillAgedRGBA(gp.buf, f.Cells, f.FirstSteps, f.Steps, gp.palette)
	} else {
		fillPaletteRGBA(gp.buf, f.Cells, gp.palette)
	}
	markCell(gp.buf, gp.w, f.AntX, f.AntY, AntColor)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
