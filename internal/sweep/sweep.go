// Package sweep drives a session through one full revolution of the unit
// circle and records how well Ax aligns with x at each step. Alignment
// dips to zero exactly at eigenvector directions, which makes the series a
// headless stand-in for dragging the vector by hand. No decomposition is
// computed; the data is the same visual-alignment signal the interactive
// demo shows.
package sweep

import (
	"math"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/vec"
)

type Series struct {
	Theta     []float64 // sweep angle of x, radians
	Alignment []float64 // |sin(angle between x and Ax)|, 0 when parallel
	Magnitude []float64 // |Ax|
}

// Run sweeps x through steps equally spaced angles on the unit circle via
// pointer events, so the session's traces fill exactly as an interactive
// drag would. The session is left at the final angle.
func Run(s *engine.Session, steps int) *Series {
	if steps < 1 {
		steps = 1
	}
	out := &Series{
		Theta:     make([]float64, 0, steps),
		Alignment: make([]float64, 0, steps),
		Magnitude: make([]float64, 0, steps),
	}

	for i := 0; i < steps; i++ {
		theta := float64(i) / float64(steps) * 2 * math.Pi
		s.Handle(engine.PointerMoved{P: vec.FromAngle(theta)})

		x, ax := s.X(), s.ImageX()
		out.Theta = append(out.Theta, theta)
		out.Alignment = append(out.Alignment, alignment(x, ax))
		out.Magnitude = append(out.Magnitude, ax.Norm())
	}
	return out
}

// alignment is |sin| of the angle between x and its image; 0 when Ax is
// parallel (or anti-parallel) to x. A zero image counts as aligned.
func alignment(x, ax vec.Vec2) float64 {
	n := ax.Norm()
	if n == 0 {
		return 0
	}
	return math.Abs(x.Cross(ax)) / n
}

// Minima returns the indices of local minima of the alignment series,
// candidate eigenvector directions.
func (s *Series) Minima() []int {
	var idx []int
	n := len(s.Alignment)
	for i := 0; i < n; i++ {
		prev := s.Alignment[(i-1+n)%n]
		next := s.Alignment[(i+1)%n]
		if s.Alignment[i] < prev && s.Alignment[i] <= next {
			idx = append(idx, i)
		}
	}
	return idx
}
