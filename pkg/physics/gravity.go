package physics

import "math"

// Default physical constants. All of them are fixed for the lifetime of
// a run; the simulation config may override the tunable ones at startup.
const (
	G = 6.6743e-11

	// DefaultSoftening is added to the squared pair distance so the
	// force denominator never reaches zero for coincident particles.
	DefaultSoftening = 10.0

	// DefaultDistEpsilon is the second, smaller epsilon, added after
	// the square root. It guards the direction normalization and the
	// escape-velocity denominator independently of the softening term.
	DefaultDistEpsilon = 1e-7

	// DefaultBrightenStep is added to a star's brightness once per
	// pairwise iteration. It is a visual pulsing counter tied to
	// iteration count, not to force magnitude.
	DefaultBrightenStep = 1e-6

	BrightnessMin = 0.1
	BrightnessMax = 1.0
)

// Params holds the constants the force kernel runs with.
type Params struct {
	G            float64
	Softening    float64 // added to squared distance
	DistEpsilon  float64 // added after the square root
	BrightenStep float64
}

func DefaultParams() Params {
	return Params{
		G:            G,
		Softening:    DefaultSoftening,
		DistEpsilon:  DefaultDistEpsilon,
		BrightenStep: DefaultBrightenStep,
	}
}

// EscapeVelocity returns the speed needed to escape a mass m from
// distance d: sqrt(2*g*m/d). The kernel does not act on it; it exists
// for extensions that will.
func EscapeVelocity(g, m, d float64) float64 {
	return math.Sqrt(2 * g * m / d)
}

func clampBrightness(b float64) float64 {
	if b < BrightnessMin {
		return BrightnessMin
	}
	if b > BrightnessMax {
		return BrightnessMax
	}
	return b
}
