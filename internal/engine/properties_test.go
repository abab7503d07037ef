package engine

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/eigshow/internal/matrices"
	"github.com/san-kum/eigshow/internal/vec"
)

// Pointer positions inside the interactive region always leave x unit
// length and y orthogonal to it.
func TestProperty_UnitAndOrthogonal(t *testing.T) {
	g := NewWithT(t)
	s := newTestSession()

	for r := 0.1; r < Threshold; r += 0.2 {
		for theta := 0.0; theta < 2*math.Pi; theta += math.Pi / 16 {
			s.Handle(PointerMoved{P: vec.FromAngle(theta).Scale(r)})

			g.Expect(s.X().Norm()).To(BeNumerically("~", 1.0, 1e-12))
			g.Expect(s.Y().Norm()).To(BeNumerically("~", 1.0, 1e-12))
			g.Expect(s.X().Dot(s.Y())).To(BeNumerically("~", 0.0, 1e-12))
		}
	}
}

// Pointer positions at or beyond the threshold leave the whole session
// untouched.
func TestProperty_OutOfRangeIsNoOp(t *testing.T) {
	g := NewWithT(t)
	s := newTestSession()
	s.Handle(PointerMoved{P: vec.Vec2{X: 0.4, Y: -0.3}})
	s.Handle(ButtonReleased{P: vec.Vec2{X: 0.4, Y: -0.3}})

	x, y := s.X(), s.Y()
	traceLen, markerLen := len(s.Trace(TrackX)), len(s.Markers(TrackX))

	for _, p := range []vec.Vec2{
		{X: Threshold, Y: 0},
		{X: 0, Y: -Threshold},
		{X: 3, Y: 3},
		{X: -10, Y: 0.1},
	} {
		s.Handle(PointerMoved{P: p})
		s.Handle(ButtonReleased{P: p})
	}

	g.Expect(s.X()).To(Equal(x))
	g.Expect(s.Y()).To(Equal(y))
	g.Expect(s.Trace(TrackX)).To(HaveLen(traceLen))
	g.Expect(s.Trace(TrackY)).To(HaveLen(traceLen))
	g.Expect(s.Markers(TrackX)).To(HaveLen(markerLen))
	g.Expect(s.Markers(TrackY)).To(BeEmpty())
}

// N in-range moves yield traces of length N; a following in-range click
// appends exactly one x marker and no y marker.
func TestProperty_AppendCounts(t *testing.T) {
	g := NewWithT(t)
	s := newTestSession()

	const n = 50
	for i := 0; i < n; i++ {
		s.Handle(PointerMoved{P: vec.FromAngle(float64(i) * 0.07)})
	}
	s.Handle(ButtonReleased{P: vec.Vec2{X: 0.5, Y: 0.1}})

	g.Expect(s.Trace(TrackX)).To(HaveLen(n))
	g.Expect(s.Trace(TrackY)).To(HaveLen(n))
	g.Expect(s.Markers(TrackX)).To(HaveLen(1))
	g.Expect(s.Markers(TrackY)).To(BeEmpty())
}

// Trace samples pair each recorded vector with its image under the matrix
// current at append time.
func TestProperty_SamplesCarryImages(t *testing.T) {
	g := NewWithT(t)
	s := newTestSession()
	s.Handle(MatrixSelected{Choice: "swap"})

	s.Handle(PointerMoved{P: vec.Vec2{X: 0.6, Y: 0.8}})

	sample := s.Trace(TrackX)[0]
	g.Expect(sample.V).To(Equal(s.X()))
	g.Expect(sample.Image).To(Equal(s.Matrix().MulVec(sample.V)))

	ySample := s.Trace(TrackY)[0]
	g.Expect(ySample.V).To(Equal(s.Y()))
	g.Expect(ySample.Image).To(Equal(s.Matrix().MulVec(ySample.V)))
}

// End-to-end: five moves and a click, then a mode toggle; everything
// clears and the y visuals become visible.
func TestProperty_ToggleAfterActivity(t *testing.T) {
	g := NewWithT(t)
	s := newTestSession()

	for i := 0; i < 5; i++ {
		s.Handle(PointerMoved{P: vec.FromAngle(float64(i) * 0.4)})
	}
	s.Handle(ButtonReleased{P: vec.Vec2{X: 0.3, Y: 0}})
	s.Handle(ModeToggled{Paired: true})

	g.Expect(s.Trace(TrackX)).To(BeEmpty())
	g.Expect(s.Trace(TrackY)).To(BeEmpty())
	g.Expect(s.Markers(TrackX)).To(BeEmpty())
	g.Expect(s.Markers(TrackY)).To(BeEmpty())
	g.Expect(s.YVisible()).To(BeTrue())
	g.Expect(s.Mode().Label()).To(Equal("Make Ax perpendicular to Ay"))
}

// Two sessions with the same seed replay the same random draws.
func TestProperty_SeededRandomReplay(t *testing.T) {
	g := NewWithT(t)
	a := NewSession(matrices.Builtin(), 99)
	b := NewSession(matrices.Builtin(), 99)

	a.Handle(MatrixSelected{Choice: matrices.Random})
	b.Handle(MatrixSelected{Choice: matrices.Random})
	g.Expect(a.Matrix()).To(Equal(b.Matrix()))

	a.Handle(MatrixSelected{Choice: matrices.Random})
	g.Expect(a.Matrix()).NotTo(Equal(b.Matrix()))
}
