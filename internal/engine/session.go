// Package engine is the reactive core of the demonstrator. A Session owns
// the selected matrix, the user-driven unit vector x and its derived
// perpendicular partner y, and the accumulated trace and marker buffers.
// All mutation flows through Handle, which routes decoded input events to
// state transitions and notifies observers synchronously, so a renderer
// never observes a partially updated state.
package engine

import (
	"fmt"

	"github.com/san-kum/eigshow/internal/matrices"
	"github.com/san-kum/eigshow/internal/vec"
)

// Threshold is the pointer proximity bound: events at or beyond this
// distance from the origin are outside the interactive region and ignored.
const Threshold = 1.5

// Track identifies one of the two tracked vectors.
type Track int

const (
	TrackX Track = iota
	TrackY
)

// Sample is one recorded (source vector, image vector) pair.
type Sample struct {
	V     vec.Vec2
	Image vec.Vec2
}

type Session struct {
	catalog *matrices.Catalog
	sampler *matrices.Sampler

	choice string
	matrix vec.Mat2

	x, y vec.Vec2

	traces  [2][]Sample
	markers [2][]Sample

	mode      Mode
	observers []Observer
}

// NewSession creates a session over the given catalog. The matrix starts at
// the catalog default, x at (1, 0), mode at single, all buffers empty. The
// seed drives the random matrix choice only.
func NewSession(catalog *matrices.Catalog, seed uint64, obs ...Observer) *Session {
	if catalog == nil {
		catalog = matrices.Builtin()
	}
	def := catalog.Default()
	s := &Session{
		catalog:   catalog,
		sampler:   matrices.NewSampler(seed),
		choice:    def.Name,
		matrix:    def.Mat(),
		x:         vec.Vec2{X: 1, Y: 0},
		observers: obs,
	}
	s.y = s.x.Perp()
	return s
}

// AddObserver registers o for change notifications.
func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Handle routes one decoded input event. Dependent recomputation (y after
// x, buffer appends after both) completes before observers are notified,
// and Handle returns only after notification.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerMoved:
		s.pointerMoved(ev.P)
	case ButtonReleased:
		s.buttonReleased(ev.P)
	case ButtonPressed:
		// Markers are recorded on release.
	case MatrixSelected:
		s.selectChoice(ev.Choice)
		s.clearBuffers()
		s.notify()
	case ModeToggled:
		if ev.Paired {
			s.mode = ModePaired
		} else {
			s.mode = ModeSingle
		}
		s.clearBuffers()
		s.notify()
	}
}

func (s *Session) pointerMoved(p vec.Vec2) {
	if p.Norm() >= Threshold {
		return
	}
	u, ok := p.Normalize()
	if !ok {
		return
	}
	s.x = u
	s.y = u.Perp()

	// Both traces record regardless of mode; only visibility differs, so a
	// later switch to paired mode shows full history from that point on.
	s.traces[TrackX] = append(s.traces[TrackX], Sample{V: s.x, Image: s.Image(s.x)})
	s.traces[TrackY] = append(s.traces[TrackY], Sample{V: s.y, Image: s.Image(s.y)})
	s.checkInvariants()
	s.notify()
}

func (s *Session) buttonReleased(p vec.Vec2) {
	if p.Norm() >= Threshold {
		return
	}
	// Only the x/Ax pair is marked, in paired mode too. The original
	// demonstrator never records a y marker; the asymmetry is kept as
	// observed behavior rather than corrected here.
	s.markers[TrackX] = append(s.markers[TrackX], Sample{V: s.x, Image: s.Image(s.x)})
	s.notify()
}

func (s *Session) selectChoice(name string) {
	if name == matrices.Random {
		// An intentional fresh draw on every selection, including
		// reselecting random.
		s.choice = matrices.Random
		s.matrix = s.sampler.Draw()
		return
	}
	p, ok := s.catalog.Find(name)
	if !ok {
		p = s.catalog.Default()
	}
	s.choice = p.Name
	s.matrix = p.Mat()
}

func (s *Session) clearBuffers() {
	s.traces[TrackX] = nil
	s.traces[TrackY] = nil
	s.markers[TrackX] = nil
	s.markers[TrackY] = nil
}

func (s *Session) notify() {
	for _, o := range s.observers {
		o.SessionChanged(s)
	}
}

// checkInvariants asserts the structural invariants that can only break
// through a programming error. Violations panic; they are never a
// recoverable runtime condition.
func (s *Session) checkInvariants() {
	if len(s.traces[TrackX]) != len(s.traces[TrackY]) {
		panic(fmt.Sprintf("engine: trace length mismatch x=%d y=%d",
			len(s.traces[TrackX]), len(s.traces[TrackY])))
	}
}

// Image returns A*v for the current matrix.
func (s *Session) Image(v vec.Vec2) vec.Vec2 { return s.matrix.MulVec(v) }

// ImageX returns A*x.
func (s *Session) ImageX() vec.Vec2 { return s.matrix.MulVec(s.x) }

// ImageY returns A*y.
func (s *Session) ImageY() vec.Vec2 { return s.matrix.MulVec(s.y) }

func (s *Session) Matrix() vec.Mat2 { return s.matrix }

// ChoiceName is the catalog name of the current matrix selection.
func (s *Session) ChoiceName() string { return s.choice }

func (s *Session) Catalog() *matrices.Catalog { return s.catalog }

// X is the user-driven unit vector.
func (s *Session) X() vec.Vec2 { return s.x }

// Y is the derived perpendicular partner, always x rotated 90 degrees CCW.
func (s *Session) Y() vec.Vec2 { return s.y }

func (s *Session) Mode() Mode { return s.mode }

// YVisible reports whether y-associated drawables should render.
func (s *Session) YVisible() bool { return s.mode == ModePaired }

// Trace returns the recorded sweep history for the given track, oldest
// first. The slice is shared with the session; callers must treat it as
// read-only.
func (s *Session) Trace(tr Track) []Sample { return s.traces[tr] }

// Markers returns the recorded click markers for the given track.
func (s *Session) Markers(tr Track) []Sample { return s.markers[tr] }
