// Package export renders a session snapshot to SVG: unit circle, swept
// traces, markers, and the current vectors. The output is a standalone
// drawing, not a persisted session.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/vec"
)

const (
	colBg     = "#0a0a0a"
	colCircle = "#3c3c3c"
	colX      = "#b4b4b4"
	colImageX = "#ffffff"
	colY      = "#5a8ca0"
	colImageY = "#86c8e0"
	colMarker = "#ffd23c"
)

// SessionSVG draws the session into a width x height SVG viewport covering
// the world square [-Threshold, Threshold]^2.
func SessionSVG(s *engine.Session, width, height int) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, colBg)

	px := func(v vec.Vec2) (float64, float64) {
		x := (v.X + engine.Threshold) / (2 * engine.Threshold) * float64(width)
		y := (engine.Threshold - v.Y) / (2 * engine.Threshold) * float64(height)
		return x, y
	}

	// Unit circle.
	cx, cy := px(vec.Vec2{})
	r := float64(width) / (2 * engine.Threshold)
	fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>
`, cx, cy, r, colCircle)

	writeTrace(&b, s.Trace(engine.TrackX), px, colImageX)
	if s.YVisible() {
		writeTrace(&b, s.Trace(engine.TrackY), px, colImageY)
	}

	for _, m := range s.Markers(engine.TrackX) {
		for _, v := range []vec.Vec2{m.V, m.Image} {
			x, y := px(v)
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x, y, colMarker)
		}
	}

	writeVector(&b, s.X(), px, colX)
	writeVector(&b, s.ImageX(), px, colImageX)
	if s.YVisible() {
		writeVector(&b, s.Y(), px, colY)
		writeVector(&b, s.ImageY(), px, colImageY)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// writeTrace draws the swept image curve for one track.
func writeTrace(b *strings.Builder, trace []engine.Sample, px func(vec.Vec2) (float64, float64), color string) {
	if len(trace) < 2 {
		return
	}
	b.WriteString(`<path fill="none" stroke="` + color + `" stroke-width="1.2" d="M`)
	for i, s := range trace {
		x, y := px(s.Image)
		if i == 0 {
			fmt.Fprintf(b, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(b, " L%.1f,%.1f", x, y)
		}
	}
	b.WriteString("\"/>\n")
}

func writeVector(b *strings.Builder, v vec.Vec2, px func(vec.Vec2) (float64, float64), color string) {
	ox, oy := px(vec.Vec2{})
	x, y := px(v)
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, ox, oy, x, y, color)
}
