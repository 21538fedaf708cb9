package view

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"langton/internal/core"
	"langton/internal/sims/ant"

	"github.com/logrusorgru/aurora"
)

// Source is the read-only engine surface the console needs.
type Source interface {
	Size() core.Size
	Cells() []uint8
	Ant() ant.Ant
}

// xterm-256 approximations of the GUI palette, indexed by state.
var stateColors = []uint8{236, 77, 204, 220, 33, 135, 214, 81}

const glyphs = "0123456789abcdefghijklmnopqrstuvwxyz"

// Console prints grids and run summaries to a terminal.
type Console struct {
	out io.Writer
	au  aurora.Aurora
}

// NewConsole writes to out, with ANSI colours when colors is true.
func NewConsole(out io.Writer, colors bool) *Console {
	return &Console{out: out, au: aurora.NewAurora(colors)}
}

// Grid prints one character per cell: '.' for background, a base-36 digit for
// other states ('#' past 35) and an arrow for the ant.
func (c *Console) Grid(src Source) error {
	size := src.Size()
	cells := src.Cells()
	a := src.Ant()
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if x == a.X && y == a.Y {
				b.WriteString(c.au.Bold(c.au.Index(stateColors[2], arrow(a.Dir))).String())
				continue
			}
			b.WriteString(c.cell(cells[y*size.W+x]))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(c.out, b.String())
	return err
}

func (c *Console) cell(state uint8) string {
	if state == 0 {
		return c.au.Index(stateColors[0], ".").String()
	}
	g := "#"
	if int(state) < len(glyphs) {
		g = glyphs[state : state+1]
	}
	col := stateColors[1+(int(state)-1)%(len(stateColors)-1)]
	return c.au.Index(col, g).String()
}

func arrow(d ant.Direction) string {
	switch d {
	case ant.Up:
		return "^"
	case ant.Right:
		return ">"
	case ant.Down:
		return "v"
	default:
		return "<"
	}
}

// Summary prints a titled block of key/value pairs sorted by key.
func (c *Console) Summary(title string, data map[string]any) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.au.Bold(title))
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %v\n", c.au.Cyan(k), data[k])
	}
	_, err := io.WriteString(c.out, b.String())
	return err
}

// Stats summarises an engine for Summary.
func Stats(e *ant.Engine) map[string]any {
	coloured := 0
	for _, v := range e.Cells() {
		if v != 0 {
			coloured++
		}
	}
	a := e.Ant()
	size := e.Size()
	return map[string]any{
		"Rules":          e.Rules().String(),
		"States":         e.States(),
		"Grid":           fmt.Sprintf("%d x %d", size.W, size.H),
		"Steps":          e.Steps(),
		"Ant":            fmt.Sprintf("(%d, %d) %s", a.X, a.Y, a.Dir),
		"Coloured cells": coloured,
		"Undo depth":     e.HistoryLen(),
		"Elapsed":        ant.FormatElapsed(e.Elapsed()),
	}
}
