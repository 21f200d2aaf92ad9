package wildfire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFuelKnownClasses(t *testing.T) {
	classes := FuelClasses()
	require.Len(t, classes, 13, "all Anderson 13 classes should be present")

	for _, id := range classes {
		rec, defaulted := LookupFuel(id)
		assert.False(t, defaulted, "class %d should be known", id)
		assert.Equal(t, id, rec.ID)
		assert.NotEmpty(t, rec.Name)
		assert.Greater(t, rec.BaseSpread, 0.0)
		assert.LessOrEqual(t, rec.BaseSpread, 1.0)
		assert.Greater(t, rec.SAV1h, 0.0)
		assert.Greater(t, rec.ExtinctionMoisture, 0.0)
		assert.Equal(t, 8000.0, rec.HeatContent)
	}
}

func TestLookupFuelUnknownDefaults(t *testing.T) {
	for _, id := range []FuelClass{FuelUnknown, 14, 99, 255} {
		rec, defaulted := LookupFuel(id)
		assert.True(t, defaulted, "class %d should fall back", id)
		assert.Equal(t, FuelUnknown, rec.ID)
		assert.InDelta(t, 0.01, rec.BaseSpread, 1e-9, "fallback is near-non-burnable")
	}
}

func TestGrassSpreadsFasterThanTimberLitter(t *testing.T) {
	grass, _ := LookupFuel(FuelShortGrass)
	litter, _ := LookupFuel(FuelClosedTimberLitter)
	assert.Greater(t, grass.BaseSpread, litter.BaseSpread)
}
