package viz

import (
	"strings"
	"testing"
)

func TestCanvas_PlotAndClear(t *testing.T) {
	c := NewCanvas(10, 10, 1.5)

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("fresh canvas should be empty")
	}

	c.Plot(0, 0)
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("plot left no braille dot")
	}

	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("clear left dots behind")
	}
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(10, 10, 1.5)
	c.Plot(10, 10)
	c.Plot(-10, -10)
	c.Line(-5, -5, 5, 5) // clipped by sub-pixel bounds checks
}

func TestCanvas_WorldRoundtrip(t *testing.T) {
	c := NewCanvas(40, 20, 1.5)

	wx, wy := c.World(20, 10)
	if wx < -0.1 || wx > 0.1 || wy < -0.1 || wy > 0.1 {
		t.Errorf("center cell maps to (%v, %v), want near origin", wx, wy)
	}

	wx, wy = c.World(0, 0)
	if wx > -1.3 || wy < 1.3 {
		t.Errorf("top-left cell maps to (%v, %v), want near (-1.5, 1.5)", wx, wy)
	}
}

func TestCanvas_LineSetsEndpoints(t *testing.T) {
	c := NewCanvas(20, 20, 1.5)
	c.Line(-1, -1, 1, 1)

	for _, p := range [][2]float64{{-1, -1}, {1, 1}, {0, 0}} {
		x, y := c.pixel(p[0], p[1])
		if c.grid[y/4][x/2] == 0x2800 {
			t.Errorf("cell for world point (%v, %v) is empty", p[0], p[1])
		}
	}
}

func TestCanvas_CircleStaysOnRing(t *testing.T) {
	c := NewCanvas(30, 30, 1.5)
	c.Circle(1)

	// The center cell must stay empty; the circle only touches the ring.
	x, y := c.pixel(0, 0)
	if c.grid[y/4][x/2] != 0x2800 {
		t.Error("circle drew through the origin")
	}
}
