package simulation

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/at0m741/Simple-Galaxy-Simulation/pkg/physics"
)

// Store owns the star field for the lifetime of a run. The slice is
// allocated once; no stars are inserted or removed afterwards. Index 0
// holds the dominant central mass. The integrator mutates the field in
// place, the presenter only reads it.
type Store struct {
	stars []physics.Star
	halo  []physics.DarkMatter
}

// NewStore allocates the field and populates the initial disk: stars
// 1..n-1 on random radii and angles around the central mass, each with
// the tangential circular-orbit speed sqrt(G*M/r) for its radius.
//
// Radii are drawn from [MinRadius, MaxRadius], so a degenerate
// near-zero radius (and the resulting non-finite orbital speed) cannot
// be produced by construction.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	stars := make([]physics.Star, cfg.Stars)
	stars[0] = physics.Star{
		Mass:       cfg.CentralMass,
		Brightness: physics.BrightnessMax,
		Opacity:    1.0,
	}
	for i := 1; i < cfg.Stars; i++ {
		r := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		theta := rng.Float64() * 2 * math.Pi
		v := math.Sqrt(cfg.G * cfg.CentralMass / r)

		stars[i] = physics.Star{
			Pos: physics.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)},
			// Perpendicular to the radius vector: counterclockwise.
			Vel:        physics.Vec2{X: -v * math.Sin(theta), Y: v * math.Cos(theta)},
			Mass:       cfg.MinMass + rng.Float64()*(cfg.MaxMass-cfg.MinMass),
			Brightness: physics.BrightnessMin,
			Opacity:    rng.Float64(),
		}
	}

	halo := make([]physics.DarkMatter, cfg.HaloStars)
	for i := range halo {
		r := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		theta := rng.Float64() * 2 * math.Pi
		halo[i] = physics.DarkMatter{
			Pos:  physics.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)},
			Mass: cfg.MinMass + rng.Float64()*(cfg.MaxMass-cfg.MinMass),
		}
	}

	return &Store{stars: stars, halo: halo}, nil
}

// Len returns the number of stars in the field.
func (s *Store) Len() int { return len(s.stars) }

// At returns a pointer to the star at index i.
func (s *Store) At(i int) *physics.Star { return &s.stars[i] }

// Stars exposes the raw buffer for bulk traversal by the integrator and
// the presenter.
func (s *Store) Stars() []physics.Star { return s.stars }

// Halo exposes the inert dark-matter population.
func (s *Store) Halo() []physics.DarkMatter { return s.halo }
