package simulation

import (
	"github.com/at0m741/Simple-Galaxy-Simulation/pkg/physics"
)

// Simulator is the fixed-step clock of the simulation. Every Update
// advances simulated time by exactly cfg.Dt, independent of wall-clock
// time.
type Simulator struct {
	cfg   Config
	store *Store
	integ *physics.Integrator
	steps int
}

// New builds a store from the config and wires the integrator to it.
func New(cfg Config) (*Simulator, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		cfg:   cfg,
		store: store,
		integ: physics.NewIntegrator(cfg.Params()),
	}, nil
}

// Update runs exactly one tick. It is synchronous: when it returns, the
// integrator's parallel pass has completed and the store is safe to
// read.
func (s *Simulator) Update() {
	s.integ.Step(s.store.Stars(), s.cfg.Dt)
	s.steps++
}

func (s *Simulator) Store() *Store  { return s.store }
func (s *Simulator) Config() Config { return s.cfg }
func (s *Simulator) Steps() int     { return s.steps }
