package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBAWrapsPastPalette(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, A: 255},
		{R: 2, A: 255},
		{R: 3, A: 255},
	}
	cells := []uint8{0, 1, 2, 3, 4, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 2, 3, 2}
	for i, r := range want {
		if buf[i*4] != r || buf[i*4+3] != 255 {
			t.Fatalf("cell %d -> R=%d A=%d, want R=%d", i, buf[i*4], buf[i*4+3], r)
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{1, 0}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestFillAgedRGBADarkensOlderCells(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 200, G: 100, B: 50, A: 255}}
	cells := []uint8{1, 1, 0}
	first := []uint64{1, 10, 0}
	buf := make([]byte, 4*len(cells))
	fillAgedRGBA(buf, cells, first, 10, palette)

	if buf[4] != 200 || buf[5] != 100 || buf[6] != 50 {
		t.Fatalf("newest cell should be full brightness, got %v", buf[4:8])
	}
	if buf[0] >= buf[4] {
		t.Fatalf("older cell should be darker: %d vs %d", buf[0], buf[4])
	}
	if buf[3] != 255 {
		t.Fatal("alpha must not be shaded")
	}
	if buf[8] != 0 || buf[11] != 255 {
		t.Fatalf("background cell changed: %v", buf[8:12])
	}
}

func TestDefaultPaletteBackgroundAndMarkCell(t *testing.T) {
	if len(Palette) != 8 {
		t.Fatalf("palette has %d entries", len(Palette))
	}
	buf := make([]byte, 4*4)
	markCell(buf, 2, 1, 1, AntColor)
	if buf[12] != AntColor.R || buf[15] != AntColor.A {
		t.Fatalf("markCell wrote %v", buf[12:16])
	}
	markCell(buf, 2, 5, 5, AntColor) // out of range is ignored
}
