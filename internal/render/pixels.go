package render

import "image/color"

// Palette is the default state palette. Index 0 is the board background.
var Palette = []color.RGBA{
	{R: 0x0B, G: 0x0E, B: 0x14, A: 0xFF},
	{R: 0x32, G: 0xD7, B: 0x4B, A: 0xFF},
	{R: 0xFF, G: 0x37, B: 0x5F, A: 0xFF},
	{R: 0xFF, G: 0xD6, B: 0x0A, A: 0xFF},
	{R: 0x0A, G: 0x84, B: 0xFF, A: 0xFF},
	{R: 0xBF, G: 0x5A, B: 0xF2, A: 0xFF},
	{R: 0xFF, G: 0x9F, B: 0x0A, A: 0xFF},
	{R: 0x64, G: 0xD2, B: 0xFF, A: 0xFF},
}

// AntColor marks the agent's cell.
var AntColor = color.RGBA{R: 0xFF, G: 0x37, B: 0x5F, A: 0xFF}

// minAgeShade is the brightness applied to the oldest coloured cells.
const minAgeShade = 0.35

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. States
// beyond the palette wrap around it, skipping the background entry. When the
// palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	for i, c := range cells {
		col := paletteColor(palette, c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillAgedRGBA is fillPaletteRGBA with non-background cells darkened by how
// long ago they were first coloured relative to now. Cells touched on the
// latest step keep full brightness.
func fillAgedRGBA(buf []byte, cells []uint8, firstSteps []uint64, now uint64, palette []color.RGBA) {
	fillPaletteRGBA(buf, cells, palette)
	if len(palette) == 0 || now == 0 || len(firstSteps) != len(cells) {
		return
	}
	for i, c := range cells {
		first := firstSteps[i]
		if c == 0 || first == 0 {
			continue
		}
		shade := minAgeShade + (1-minAgeShade)*float64(first)/float64(now)
		if shade > 1 {
			shade = 1
		}
		base := i * 4
		buf[base+0] = uint8(float64(buf[base+0])*shade + 0.5)
		buf[base+1] = uint8(float64(buf[base+1])*shade + 0.5)
		buf[base+2] = uint8(float64(buf[base+2])*shade + 0.5)
	}
}

func paletteColor(palette []color.RGBA, state uint8) color.RGBA {
	idx := int(state)
	if idx < len(palette) {
		return palette[idx]
	}
	if len(palette) == 1 {
		return palette[0]
	}
	return palette[1+(idx-1)%(len(palette)-1)]
}

// markCell paints a single cell of a w-wide RGBA buffer.
func markCell(buf []byte, w, x, y int, col color.RGBA) {
	base := (y*w + x) * 4
	if base < 0 || base+3 >= len(buf) {
		return
	}
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
