package simulation

import "math"

// TotalEnergy returns kinetic plus softened potential energy of the
// star field. Not used by the tick itself; headless mode and tests
// sample it to watch for numerical blow-up.
func (s *Simulator) TotalEnergy() float64 {
	stars := s.store.stars
	g := s.cfg.G

	ke := 0.0
	pe := 0.0
	for i := range stars {
		v := stars[i].Vel
		ke += 0.5 * stars[i].Mass * (v.X*v.X + v.Y*v.Y)

		for j := i + 1; j < len(stars); j++ {
			dx := stars[j].Pos.X - stars[i].Pos.X
			dy := stars[j].Pos.Y - stars[i].Pos.Y
			d := math.Sqrt(dx*dx + dy*dy + s.cfg.Softening)
			pe -= g * stars[i].Mass * stars[j].Mass / d
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum of the star field.
func (s *Simulator) Momentum() (px, py float64) {
	for _, st := range s.store.stars {
		px += st.Mass * st.Vel.X
		py += st.Mass * st.Vel.Y
	}
	return px, py
}

// AngularMomentum returns the total angular momentum about the origin.
func (s *Simulator) AngularMomentum() float64 {
	l := 0.0
	for _, st := range s.store.stars {
		l += st.Mass * (st.Pos.X*st.Vel.Y - st.Pos.Y*st.Vel.X)
	}
	return l
}
