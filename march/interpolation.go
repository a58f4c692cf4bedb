package march

import (
	"fmt"
	"math"
	"strings"
)

// Interpolation selects how the crossing offset along a flagged edge is
// computed from the two sample values that bracket it.
type Interpolation int

const (
	// Linear places the crossing at the exact zero of the line through the
	// two bracketing samples. This is the default.
	Linear Interpolation = iota
	// Halfway always places the crossing at the edge midpoint, ignoring
	// the sample magnitudes beyond their sign.
	Halfway
	// Cosine eases the linear fraction through a half-cosine, producing a
	// smoother (but still monotonic) crossing placement than Linear.
	Cosine
)

// String renders the interpolation mode's canonical lower-case name.
func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Halfway:
		return "halfway"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation maps a case-insensitive name to its Interpolation
// value. Returns ErrInvalidInput for anything else.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "linear":
		return Linear, nil
	case "halfway":
		return Halfway, nil
	case "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("march: unknown interpolation %q: %w", name, ErrInvalidInput)
	}
}

// crossingFraction computes t in (0,1), the fraction of the edge from the
// sample at vA to the sample at vB where the field crosses level. Callers
// must only invoke this once the sign-flip precondition (vA and vB land on
// opposite sides of level) has been established — that is what rules out
// the division by zero this formula would otherwise risk.
func crossingFraction(vA, vB, level float64, mode Interpolation) float64 {
	a, b := vA-level, vB-level
	switch mode {
	case Halfway:
		return 0.5
	case Cosine:
		return math.Acos((b+a)/(b-a)) / math.Pi
	default:
		return a / (a - b)
	}
}
