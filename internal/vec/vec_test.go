package vec

import (
	"math"
	"testing"
)

func TestVec2_Norm(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5.0},
		{Vec2{1, 0}, 1.0},
		{Vec2{0, 0}, 0.0},
		{Vec2{-1, 1}, math.Sqrt2},
	}

	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec2_Normalize(t *testing.T) {
	u, ok := Vec2{3, 4}.Normalize()
	if !ok {
		t.Fatal("expected normalize to succeed")
	}
	if math.Abs(u.Norm()-1) > 1e-12 {
		t.Errorf("normalized norm = %v, want 1", u.Norm())
	}
	if math.Abs(u.X-0.6) > 1e-12 || math.Abs(u.Y-0.8) > 1e-12 {
		t.Errorf("Normalize(3,4) = %v, want (0.6, 0.8)", u)
	}
}

func TestVec2_Normalize_Zero(t *testing.T) {
	if _, ok := (Vec2{}).Normalize(); ok {
		t.Error("zero vector should not normalize")
	}
}

func TestVec2_Perp(t *testing.T) {
	tests := []struct {
		v, want Vec2
	}{
		{Vec2{1, 0}, Vec2{0, 1}},
		{Vec2{0, 1}, Vec2{-1, 0}},
		{Vec2{0.6, 0.8}, Vec2{-0.8, 0.6}},
	}

	for _, tt := range tests {
		got := tt.v.Perp()
		if got != tt.want {
			t.Errorf("Perp(%v) = %v, want %v", tt.v, got, tt.want)
		}
		if d := tt.v.Dot(got); d != 0 {
			t.Errorf("Perp(%v) not orthogonal, dot = %v", tt.v, d)
		}
	}
}

func TestMat2_MulVec(t *testing.T) {
	m := Mat2{A11: 1, A12: 2, A21: 3, A22: 4}
	got := m.MulVec(Vec2{1, 1})
	if got != (Vec2{3, 7}) {
		t.Errorf("MulVec = %v, want (3, 7)", got)
	}
}

func TestMat2_Identity(t *testing.T) {
	id := Identity()
	v := Vec2{0.3, -0.7}
	if got := id.MulVec(v); got != v {
		t.Errorf("I*v = %v, want %v", got, v)
	}
	if id.Det() != 1 {
		t.Errorf("det(I) = %v, want 1", id.Det())
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Errorf("FromAngle(pi/2) = %v, want (0, 1)", v)
	}
}
