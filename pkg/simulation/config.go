package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/at0m741/Simple-Galaxy-Simulation/pkg/physics"
)

// Config holds every constant that is fixed for the lifetime of a run.
// There is no runtime reconfiguration; the file is read once at startup.
type Config struct {
	Name string `json:"name"`

	Dt        float64 `json:"dt"`
	Stars     int     `json:"stars"`
	HaloStars int     `json:"halo_stars"`

	G            float64 `json:"g"`
	CentralMass  float64 `json:"central_mass"`
	Softening    float64 `json:"softening"`
	DistEpsilon  float64 `json:"dist_epsilon"`
	BrightenStep float64 `json:"brighten_step"`

	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	MinMass   float64 `json:"min_mass"`
	MaxMass   float64 `json:"max_mass"`

	Seed uint64 `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Name:         "galaxy",
		Dt:           1.0,
		Stars:        25000,
		HaloStars:    2500,
		G:            physics.G,
		CentralMass:  1e13,
		Softening:    physics.DefaultSoftening,
		DistEpsilon:  physics.DefaultDistEpsilon,
		BrightenStep: physics.DefaultBrightenStep,
		MinRadius:    40,
		MaxRadius:    360,
		MinMass:      1.0,
		MaxMass:      10.0,
		Seed:         1,
	}
}

// LoadConfig reads a JSON config file. Fields left at zero in the file
// fall back to the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Dt <= 0:
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	case c.Stars < 1:
		return fmt.Errorf("stars must be at least 1, got %d", c.Stars)
	case c.HaloStars < 0:
		return fmt.Errorf("halo_stars must not be negative, got %d", c.HaloStars)
	case c.CentralMass <= 0:
		return fmt.Errorf("central_mass must be positive, got %g", c.CentralMass)
	case c.MinRadius <= 0:
		return fmt.Errorf("min_radius must be positive, got %g", c.MinRadius)
	case c.MaxRadius < c.MinRadius:
		return fmt.Errorf("max_radius %g is below min_radius %g", c.MaxRadius, c.MinRadius)
	case c.MinMass <= 0:
		return fmt.Errorf("min_mass must be positive, got %g", c.MinMass)
	case c.MaxMass < c.MinMass:
		return fmt.Errorf("max_mass %g is below min_mass %g", c.MaxMass, c.MinMass)
	case c.Softening <= 0:
		return fmt.Errorf("softening must be positive, got %g", c.Softening)
	case c.DistEpsilon <= 0:
		return fmt.Errorf("dist_epsilon must be positive, got %g", c.DistEpsilon)
	}
	return nil
}

// Params extracts the force-kernel constants from the config.
func (c Config) Params() physics.Params {
	return physics.Params{
		G:            c.G,
		Softening:    c.Softening,
		DistEpsilon:  c.DistEpsilon,
		BrightenStep: c.BrightenStep,
	}
}
