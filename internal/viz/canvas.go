// Package viz renders session geometry onto a braille-character canvas for
// the terminal front end. World coordinates live in the fixed square
// [-extent, extent]^2 that matches the interactive region.
package viz

import (
	"math"
	"strings"
)

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Cols, Rows int     // character cells
	Extent     float64 // world half-width mapped onto the canvas
	grid       [][]rune
}

func NewCanvas(cols, rows int, extent float64) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, Extent: extent}
	c.grid = make([][]rune, rows)
	for i := range c.grid {
		c.grid[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// pixel maps a world point to sub-pixel coordinates. The sub-pixel grid is
// (Cols*2) x (Rows*4), world y increasing upward.
func (c *Canvas) pixel(wx, wy float64) (int, int) {
	px := (wx + c.Extent) / (2 * c.Extent) * float64(c.Cols*2)
	py := (c.Extent - wy) / (2 * c.Extent) * float64(c.Rows*4)
	return int(math.Floor(px)), int(math.Floor(py))
}

// World maps a character cell (as reported by terminal mouse tracking)
// back to world coordinates at the cell center.
func (c *Canvas) World(col, row int) (float64, float64) {
	wx := (float64(col)+0.5)/float64(c.Cols)*(2*c.Extent) - c.Extent
	wy := c.Extent - (float64(row)+0.5)/float64(c.Rows)*(2*c.Extent)
	return wx, wy
}

// Plot sets the sub-pixel nearest the world point.
func (c *Canvas) Plot(wx, wy float64) {
	x, y := c.pixel(wx, wy)
	c.set(x, y)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.grid[row][col] |= dotBits[y%4][x%2]
}

// Line draws a world-space segment with Bresenham over sub-pixels.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	ax, ay := c.pixel(x0, y0)
	bx, by := c.pixel(x1, y1)

	dx, dy := absInt(bx-ax), absInt(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(ax, ay)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ax += sx
		}
		if e2 < dx {
			err += dx
			ay += sy
		}
	}
}

// Circle draws a circle of the given world radius about the origin.
func (c *Canvas) Circle(r float64) {
	steps := (c.Cols*2 + c.Rows*4) * 2
	for i := 0; i < steps; i++ {
		theta := float64(i) / float64(steps) * 2 * math.Pi
		c.Plot(r*math.Cos(theta), r*math.Sin(theta))
	}
}

// Arrow draws a vector from the origin with a small head.
func (c *Canvas) Arrow(wx, wy float64) {
	c.Line(0, 0, wx, wy)
	n := math.Hypot(wx, wy)
	if n == 0 {
		return
	}
	head := 0.12 * c.Extent
	ux, uy := wx/n, wy/n
	// Head barbs at +-150 degrees from the shaft direction.
	const s, co = 0.5, -0.8660254037844387
	c.Line(wx, wy, wx+head*(ux*co-uy*s), wy+head*(ux*s+uy*co))
	c.Line(wx, wy, wx+head*(ux*co+uy*s), wy+head*(-ux*s+uy*co))
}

// Axes draws the coordinate axes across the full canvas.
func (c *Canvas) Axes() {
	c.Line(-c.Extent, 0, c.Extent, 0)
	c.Line(0, -c.Extent, 0, c.Extent)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
