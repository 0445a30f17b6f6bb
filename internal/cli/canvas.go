package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	kindEmpty cellKind = iota
	kindLine
	kindMarker
	kindPopup
	kindCursor
)

var cellStyles = map[cellKind]lipgloss.Style{
	kindEmpty:  lipgloss.NewStyle(),
	kindLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	kindMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	kindPopup:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("255")),
	kindCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
}

type cell struct {
	r    rune
	kind cellKind
}

// canvas is a grid of terminal cells with a 2x4 braille dot grid per cell
// for lines.
type canvas struct {
	w, h  int
	dots  [][]uint8
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, dots: make([][]uint8, h), cells: make([][]cell, h)}
	for y := range h {
		c.dots[y] = make([]uint8, w)
		c.cells[y] = make([]cell, w)
	}

	return c
}

// braille dot bits, indexed by [column][row] inside a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *canvas) setDot(x, y int) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}

	c.dots[y/4][x/2] |= brailleBits[x%2][y%4]
}

// line draws the part of the segment that falls inside the dot grid.
func (c *canvas) line(x0, y0, x1, y1 float64) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, 0, 0, float64(c.w*2-1), float64(c.h*4-1))
	if !ok {
		return
	}

	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(bx - ax)
	dy := -abs(by - ay)

	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}

	if ay > by {
		sy = -1
	}

	e := dx + dy
	for {
		c.setDot(ax, ay)

		if ax == bx && ay == by {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}

		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (c *canvas) put(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}

	c.cells[y][x] = cell{r: r, kind: k}
}

func (c *canvas) text(x, y int, s string, k cellKind) {
	for i, r := range []rune(s) {
		c.put(x+i, y, r, k)
	}
}

func (c *canvas) render() string {
	rows := make([]string, c.h)

	for y := range c.h {
		var (
			b    strings.Builder
			run  []rune
			kind cellKind
		)

		flush := func() {
			if len(run) > 0 {
				b.WriteString(cellStyles[kind].Render(string(run)))
				run = run[:0]
			}
		}

		for x := range c.w {
			cl := c.cells[y][x]
			if cl.kind == kindEmpty {
				cl = cell{r: ' '}
				if mask := c.dots[y][x]; mask != 0 {
					cl = cell{r: rune(0x2800 + int(mask)), kind: kindLine}
				}
			}

			if cl.kind != kind {
				flush()
				kind = cl.kind
			}

			run = append(run, cl.r)
		}

		flush()
		rows[y] = b.String()
	}

	return strings.Join(rows, "\n")
}

// clipSegment clips a segment to a rectangle (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}

			continue
		}

		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}

			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}

			t1 = math.Min(t1, r)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
