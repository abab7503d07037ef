package engine

import "github.com/san-kum/eigshow/internal/vec"

// Event is a decoded input event. Front ends translate their raw pointer,
// button, and selection input into these records and pass them to
// Session.Handle; handling never consumes the underlying raw event, so a
// front end is free to route it to other listeners afterwards.
type Event interface {
	isEvent()
}

// PointerMoved reports the pointer at world position P.
type PointerMoved struct {
	P vec.Vec2
}

// ButtonPressed reports a left button press. Markers are recorded on
// release, not press, so this is always a no-op.
type ButtonPressed struct{}

// ButtonReleased reports a left button release at world position P.
type ButtonReleased struct {
	P vec.Vec2
}

// MatrixSelected reports a new matrix choice by catalog name.
type MatrixSelected struct {
	Choice string
}

// ModeToggled reports the mode switch flipping.
type ModeToggled struct {
	Paired bool
}

func (PointerMoved) isEvent()   {}
func (ButtonPressed) isEvent()  {}
func (ButtonReleased) isEvent() {}
func (MatrixSelected) isEvent() {}
func (ModeToggled) isEvent()    {}

// Observer receives a push notification after every state-mutating event,
// once dependent recomputation has finished and before Handle returns.
// No-op events (out-of-range pointer, button press) do not notify.
type Observer interface {
	SessionChanged(s *Session)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s *Session)

func (f ObserverFunc) SessionChanged(s *Session) { f(s) }
