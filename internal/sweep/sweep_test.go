package sweep

import (
	"testing"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/matrices"
)

func TestRun_Identity(t *testing.T) {
	s := engine.NewSession(matrices.Builtin(), 1)
	s.Handle(engine.MatrixSelected{Choice: "identity"})

	series := Run(s, 64)

	if len(series.Theta) != 64 {
		t.Fatalf("series length = %d, want 64", len(series.Theta))
	}
	for i, a := range series.Alignment {
		if a > 1e-12 {
			t.Errorf("identity alignment[%d] = %v, want 0", i, a)
		}
	}
	for i, m := range series.Magnitude {
		if m < 1-1e-12 || m > 1+1e-12 {
			t.Errorf("identity |Ax|[%d] = %v, want 1", i, m)
		}
	}
}

func TestRun_FillsTraces(t *testing.T) {
	s := engine.NewSession(matrices.Builtin(), 1)
	Run(s, 32)

	if n := len(s.Trace(engine.TrackX)); n != 32 {
		t.Errorf("x-trace length = %d, want 32", n)
	}
	if n := len(s.Trace(engine.TrackY)); n != 32 {
		t.Errorf("y-trace length = %d, want 32", n)
	}
}

func TestMinima_Diagonal(t *testing.T) {
	s := engine.NewSession(matrices.Builtin(), 1)
	// Default diag(5/4, 3/4): eigenvectors along both axes, so alignment
	// has four minima over the full circle.
	series := Run(s, 360)

	minima := series.Minima()
	if len(minima) != 4 {
		t.Fatalf("minima count = %d, want 4", len(minima))
	}
	for _, i := range minima {
		if series.Alignment[i] > 1e-2 {
			t.Errorf("minimum alignment[%d] = %v, want near 0", i, series.Alignment[i])
		}
	}
}

func TestRun_ClampsSteps(t *testing.T) {
	s := engine.NewSession(matrices.Builtin(), 1)
	series := Run(s, 0)
	if len(series.Theta) != 1 {
		t.Errorf("series length = %d, want 1", len(series.Theta))
	}
}
