package wildfire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironmentRejectsMismatchedLayers(t *testing.T) {
	fuel := make([]FuelClass, 12)

	_, err := NewEnvironment(4, 3, fuel[:10], nil, nil, nil, nil)
	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "fuel", sm.Layer)

	_, err = NewEnvironment(4, 3, fuel, make([]float32, 5), nil, nil, nil)
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "elevation", sm.Layer)

	_, err = NewEnvironment(4, 3, fuel, nil, nil, nil, make([]bool, 2))
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "burnable", sm.Layer)

	_, err = NewEnvironment(0, 3, nil, nil, nil, nil, nil)
	assert.Error(t, err, "non-positive dimensions are rejected")
}

func TestNewEnvironmentRemapsUnknownFuel(t *testing.T) {
	fuel := []FuelClass{FuelShortGrass, 200, FuelTallGrass, 77}
	env, err := NewEnvironment(2, 2, fuel, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, env.DefaultedFuelCells())

	rec, defaulted := env.FuelAt(1, 0)
	assert.True(t, defaulted)
	assert.Equal(t, FuelUnknown, rec.ID)

	// The remapped cell is still technically burnable, just barely.
	assert.True(t, env.CanBurn(1, 0))
	assert.InDelta(t, 0.01, env.BaseSpreadProbability(0, 0, 1, 0), 1e-9)
}

func TestBaseSpreadProbabilityIsTargetDriven(t *testing.T) {
	fuel := []FuelClass{FuelShortGrass, FuelClosedTimberLitter}
	env, err := NewEnvironment(2, 1, fuel, nil, nil, nil, nil)
	require.NoError(t, err)

	grass, _ := LookupFuel(FuelShortGrass)
	litter, _ := LookupFuel(FuelClosedTimberLitter)

	assert.InDelta(t, litter.BaseSpread, env.BaseSpreadProbability(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, grass.BaseSpread, env.BaseSpreadProbability(1, 0, 0, 0), 1e-9)
}

func TestEnvironmentBoundsAndMask(t *testing.T) {
	fuel := []FuelClass{FuelBrush, FuelBrush}
	burnable := []bool{true, false}
	env, err := NewEnvironment(2, 1, fuel, nil, nil, nil, burnable)
	require.NoError(t, err)

	assert.True(t, env.CanBurn(0, 0))
	assert.False(t, env.CanBurn(1, 0), "mask overrides a burnable fuel class")
	assert.False(t, env.CanBurn(-1, 0))
	assert.False(t, env.CanBurn(2, 0))

	assert.Zero(t, env.BaseSpreadProbability(0, 0, 1, 0), "masked target never ignites")
	assert.Zero(t, env.BaseSpreadProbability(0, 0, 5, 5), "out-of-bounds target never ignites")
	assert.Zero(t, env.ElevationAt(9, 9))
}

func TestUniformEnvironmentClampsDimensions(t *testing.T) {
	env := NewUniformEnvironment(0, -3, FuelTallGrass)
	size := env.Size()
	assert.Equal(t, 1, size.W)
	assert.Equal(t, 1, size.H)
	assert.True(t, env.CanBurn(0, 0))
}
