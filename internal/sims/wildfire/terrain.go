package wildfire

// maxTerrainFactor caps the combined slope/aspect/elevation multiplier so a
// steep windward ridge cannot push the edge probability past sanity before
// the final clamp.
const maxTerrainFactor = 3.0

// slopeFactor scales spread by the elevation change across the edge. Fire
// accelerates uphill and creeps downhill.
func slopeFactor(fromX, fromY, toX, toY int, env *Environment) float64 {
	fromElev := env.ElevationAt(fromX, fromY)
	toElev := env.ElevationAt(toX, toY)
	avgSlope := float64(env.SlopeAt(fromX, fromY)+env.SlopeAt(toX, toY)) / 2

	switch {
	case toElev > fromElev:
		return 1.0 + (avgSlope/45)*0.5
	case toElev < fromElev:
		f := 1.0 - (avgSlope/90)*0.2
		if f < 0.1 {
			f = 0.1
		}
		return f
	default:
		return 1.0
	}
}

// aspectFactor favors windward-facing slopes: a target cell whose aspect
// lines up with the wind direction dries and preheats faster.
func aspectFactor(toX, toY int, env *Environment, windDirection float64) float64 {
	diff := angleDiff(float64(env.AspectAt(toX, toY)), windDirection)
	switch {
	case diff <= 45:
		return 1.2
	case diff >= 135:
		return 0.9
	default:
		return 1.0
	}
}

// elevationFactor applies coarse altitude banding to the target cell.
func elevationFactor(toX, toY int, env *Environment) float64 {
	elev := env.ElevationAt(toX, toY)
	switch {
	case elev > 1000:
		return 1.3
	case elev > 500:
		return 1.1
	case elev > 200:
		return 1.0
	default:
		return 0.9
	}
}

// terrainFactor combines the three terrain multipliers for a directed edge
// and clamps the sub-product to maxTerrainFactor.
func terrainFactor(fromX, fromY, toX, toY int, env *Environment, windDirection float64) float64 {
	f := slopeFactor(fromX, fromY, toX, toY, env) *
		aspectFactor(toX, toY, env, windDirection) *
		elevationFactor(toX, toY, env)
	if f > maxTerrainFactor {
		return maxTerrainFactor
	}
	return f
}
