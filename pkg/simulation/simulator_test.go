package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAdvancesField(t *testing.T) {
	sim, err := New(testConfig())
	require.NoError(t, err)

	before := make([]float64, sim.Store().Len())
	for i := 0; i < sim.Store().Len(); i++ {
		before[i] = sim.Store().At(i).Pos.X
	}

	sim.Update()

	assert.Equal(t, 1, sim.Steps())
	moved := 0
	for i := 1; i < sim.Store().Len(); i++ {
		if sim.Store().At(i).Pos.X != before[i] {
			moved++
		}
	}
	assert.Greater(t, moved, 0, "orbiters must move within one tick")
}

func TestUpdateKeepsMassAndOpacity(t *testing.T) {
	sim, err := New(testConfig())
	require.NoError(t, err)

	stars := sim.Store().Stars()
	masses := make([]float64, len(stars))
	opacities := make([]float64, len(stars))
	for i := range stars {
		masses[i] = stars[i].Mass
		opacities[i] = stars[i].Opacity
	}

	for i := 0; i < 8; i++ {
		sim.Update()
	}

	for i := range stars {
		require.Equal(t, masses[i], stars[i].Mass, "star %d mass", i)
		require.Equal(t, opacities[i], stars[i].Opacity, "star %d opacity", i)
	}
}

func TestUpdateLeavesHaloInert(t *testing.T) {
	sim, err := New(testConfig())
	require.NoError(t, err)

	halo := make([]float64, 0, len(sim.Store().Halo()))
	for _, dm := range sim.Store().Halo() {
		halo = append(halo, dm.Pos.X, dm.Pos.Y, dm.Vel.X, dm.Vel.Y, dm.Mass)
	}

	for i := 0; i < 5; i++ {
		sim.Update()
	}

	after := make([]float64, 0, len(halo))
	for _, dm := range sim.Store().Halo() {
		after = append(after, dm.Pos.X, dm.Pos.Y, dm.Vel.X, dm.Vel.Y, dm.Mass)
	}
	require.Equal(t, halo, after)
}

func TestAngularMomentumRoughlyConserved(t *testing.T) {
	cfg := testConfig()
	cfg.Stars = 128
	sim, err := New(cfg)
	require.NoError(t, err)

	l0 := sim.AngularMomentum()
	require.Greater(t, l0, 0.0, "the disk rotates counterclockwise")

	for i := 0; i < 20; i++ {
		sim.Update()
	}

	assert.InEpsilon(t, l0, sim.AngularMomentum(), 0.05)
}

func TestTotalEnergyFinite(t *testing.T) {
	sim, err := New(testConfig())
	require.NoError(t, err)

	e0 := sim.TotalEnergy()
	for i := 0; i < 10; i++ {
		sim.Update()
	}
	e1 := sim.TotalEnergy()

	assert.False(t, math.IsNaN(e0) || math.IsInf(e0, 0))
	assert.False(t, math.IsNaN(e1) || math.IsInf(e1, 0))
	assert.Negative(t, e0, "a bound disk has negative total energy")

	px, py := sim.Momentum()
	assert.False(t, math.IsNaN(px) || math.IsNaN(py))
}
