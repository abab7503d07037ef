package engine

// Mode selects between the single-vector (eigenvector) demonstration and
// the perpendicular-pair (singular vector) demonstration.
type Mode int

const (
	ModeSingle Mode = iota
	ModePaired
)

func (m Mode) String() string {
	if m == ModePaired {
		return "paired"
	}
	return "single"
}

// Label is the user-facing panel title for the mode. Front ends render it
// verbatim.
func (m Mode) Label() string {
	if m == ModePaired {
		return "Make Ax perpendicular to Ay"
	}
	return "Make Ax parallel to x"
}
