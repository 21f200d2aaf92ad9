package wildfire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slopedEnv builds a 2x1 environment: cell (0,0) low, cell (1,0) high.
func slopedEnv(t *testing.T, lowElev, highElev, slopeDeg, aspectDeg float32) *Environment {
	t.Helper()
	fuel := []FuelClass{FuelBrush, FuelBrush}
	env, err := NewEnvironment(2, 1,
		fuel,
		[]float32{lowElev, highElev},
		[]float32{slopeDeg, slopeDeg},
		[]float32{aspectDeg, aspectDeg},
		nil)
	require.NoError(t, err)
	return env
}

func TestSlopeFactor(t *testing.T) {
	env := slopedEnv(t, 100, 300, 45, 0)

	uphill := slopeFactor(0, 0, 1, 0, env)
	assert.InDelta(t, 1.5, uphill, 1e-9, "45° average slope uphill")

	downhill := slopeFactor(1, 0, 0, 0, env)
	assert.InDelta(t, 0.9, downhill, 1e-9, "45° average slope downhill")

	flat := slopedEnv(t, 100, 100, 45, 0)
	assert.InDelta(t, 1.0, slopeFactor(0, 0, 1, 0, flat), 1e-9, "no elevation change is neutral")

	steep := slopedEnv(t, 300, 100, 90, 0)
	assert.InDelta(t, 0.8, slopeFactor(0, 0, 1, 0, steep), 1e-9, "downhill damp bottoms out well above the 0.1 floor")
}

func TestAspectFactor(t *testing.T) {
	windward := slopedEnv(t, 0, 0, 10, 0)
	assert.InDelta(t, 1.2, aspectFactor(1, 0, windward, 30), 1e-9)

	leeward := slopedEnv(t, 0, 0, 10, 0)
	assert.InDelta(t, 0.9, aspectFactor(1, 0, leeward, 180), 1e-9)

	neutral := slopedEnv(t, 0, 0, 10, 90)
	assert.InDelta(t, 1.0, aspectFactor(1, 0, neutral, 0), 1e-9)
}

func TestElevationFactorBands(t *testing.T) {
	cases := []struct {
		elev float32
		want float64
	}{
		{1500, 1.3},
		{1000, 1.1},
		{600, 1.1},
		{500, 1.0},
		{300, 1.0},
		{200, 0.9},
		{0, 0.9},
	}
	for _, tc := range cases {
		env := slopedEnv(t, 0, tc.elev, 0, 0)
		assert.InDelta(t, tc.want, elevationFactor(1, 0, env), 1e-9, "elevation %v", tc.elev)
	}
}

func TestTerrainFactorClampedAtThree(t *testing.T) {
	// Steep uphill (2.0) on a windward face (1.2) at altitude (1.3) would
	// compose to 3.12 without the cap.
	env := slopedEnv(t, 900, 1500, 90, 0)
	got := terrainFactor(0, 0, 1, 0, env, 0)
	assert.InDelta(t, maxTerrainFactor, got, 1e-9)

	// A mild edge stays untouched by the cap.
	mild := slopedEnv(t, 0, 50, 10, 90)
	assert.Less(t, terrainFactor(0, 0, 1, 0, mild, 0), maxTerrainFactor)
}
