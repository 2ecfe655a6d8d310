package physics

import (
	"math"
	"runtime"

	"github.com/dgravesa/go-parallel/parallel"
)

// Integrator advances a star field by fixed time steps using brute-force
// pairwise gravity, O(n²) per step.
//
// Each step works from a snapshot of positions and masses taken at step
// start, so every star sees the same consistent state no matter how the
// per-star work units are scheduled. A work unit for index i reads the
// whole snapshot and writes only star i, which makes the step
// deterministic and lock-free.
type Integrator struct {
	par        Params
	goroutines int
	snap       []massPoint
}

// massPoint is the per-star slice of the snapshot the kernel reads from.
type massPoint struct {
	x, y, m float64
}

func NewIntegrator(par Params) *Integrator {
	return &Integrator{
		par:        par,
		goroutines: runtime.NumCPU(),
	}
}

// SetGoroutines overrides the worker count. n < 1 falls back to NumCPU.
func (it *Integrator) SetGoroutines(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	it.goroutines = n
}

// Step advances every star by dt. It returns only after all per-star
// work units have completed, so callers may read the field immediately.
func (it *Integrator) Step(stars []Star, dt float64) {
	n := len(stars)
	if n == 0 {
		return
	}

	if cap(it.snap) < n {
		it.snap = make([]massPoint, n)
	}
	it.snap = it.snap[:n]
	for i := range stars {
		it.snap[i] = massPoint{stars[i].Pos.X, stars[i].Pos.Y, stars[i].Mass}
	}

	parallel.WithNumGoroutines(it.goroutines).For(n, func(i, _ int) {
		it.stepStar(&stars[i], i, dt)
	})
}

// stepStar accumulates the acceleration on star i from every other star
// in the snapshot, then advances its velocity by dt and its position by
// dt/2. The half-step position advance is deliberate and must not be
// "fixed" to a symmetric leapfrog.
func (it *Integrator) stepStar(s *Star, i int, dt float64) {
	p := it.par
	xi, yi := it.snap[i].x, it.snap[i].y
	mi := it.snap[i].m
	vx, vy := s.Vel.X, s.Vel.Y
	brightness := s.Brightness

	for j := range it.snap {
		if j == i {
			continue
		}
		dx := it.snap[j].x - xi
		dy := it.snap[j].y - yi

		d2 := dx*dx + dy*dy + p.Softening
		d := math.Sqrt(d2) + p.DistEpsilon

		f := p.G * it.snap[j].m * mi / d2
		a := f / mi
		vx += a * dx / d * dt
		vy += a * dy / d * dt

		brightness = clampBrightness(brightness + p.BrightenStep)
	}

	s.Vel.X, s.Vel.Y = vx, vy
	s.Brightness = brightness
	s.Pos.X += vx * dt * 0.5
	s.Pos.Y += vy * dt * 0.5
}
