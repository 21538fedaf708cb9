//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key-binding help on top of the grid.
type Overlay struct {
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance, initially visible.
func NewOverlay() *Overlay {
	o := &Overlay{show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	const (
		pad        = 8
		lineHeight = 15
		boxWidth   = 260
	)
	boxHeight := pad*2 + len(helpLines)*lineHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(boxWidth, float64(boxHeight))
	op.GeoM.Translate(pad, pad)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	for i, line := range helpLines {
		text.Draw(screen, line, face, pad*2, pad+(i+1)*lineHeight, color.RGBA{R: 224, G: 224, B: 224, A: 255})
	}
}
