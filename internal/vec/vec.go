// Package vec provides the fixed-size linear algebra used by the
// demonstrator: 2D vectors and 2x2 real matrices.
package vec

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromAngle returns the unit vector at angle theta (radians) from (1, 0).
func FromAngle(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the scalar cross product v.X*o.Y - v.Y*o.X.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The second return value is
// false for the zero vector, which has no direction.
func (v Vec2) Normalize() (Vec2, bool) {
	n := v.Norm()
	if n == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / n, v.Y / n}, true
}

// Perp returns the 90 degree counter-clockwise rotation of v.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Mat2 is a 2x2 real matrix in row-major order:
//
//	| A11 A12 |
//	| A21 A22 |
type Mat2 struct {
	A11, A12 float64
	A21, A22 float64
}

func Identity() Mat2 {
	return Mat2{A11: 1, A22: 1}
}

// MulVec returns the matrix-vector product m*v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.A11*v.X + m.A12*v.Y,
		Y: m.A21*v.X + m.A22*v.Y,
	}
}

func (m Mat2) Det() float64 { return m.A11*m.A22 - m.A12*m.A21 }

func (m Mat2) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", m.A11, m.A12, m.A21, m.A22)
}
