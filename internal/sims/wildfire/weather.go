package wildfire

import "math"

// Weather captures the ambient conditions the engine reads at step time.
// Temperature is °C, Humidity percent, WindSpeed m/s, WindDirection compass
// degrees with 0 = north, Precipitation mm/h. The engine never mutates it;
// an external weather source replaces it between steps.
type Weather struct {
	Temperature   float64
	Humidity      float64
	WindSpeed     float64
	WindDirection float64
	Precipitation float64
}

// DefaultWeather is the documented fallback when no weather source is wired.
func DefaultWeather() Weather {
	return Weather{
		Temperature:   25,
		Humidity:      50,
		WindSpeed:     3,
		WindDirection: 180,
		Precipitation: 0,
	}
}

// bearing converts a grid displacement into a compass bearing in [0, 360)
// with 0 = north. Rows grow southward, so north is -dy.
func bearing(dx, dy int) float64 {
	deg := math.Atan2(float64(dx), float64(-dy)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// angleDiff returns the shorter arc between two compass angles, in [0, 180].
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// windFactor scales an edge probability by how well the spread direction
// (dx, dy) aligns with the wind. Downwind spread accelerates with wind
// speed, upwind spread is damped, crosswind barely moves.
func windFactor(dx, dy int, w Weather) float64 {
	if dx == 0 && dy == 0 {
		return 1.0
	}
	diff := angleDiff(bearing(dx, dy), w.WindDirection)
	switch {
	case diff <= 45:
		return 1.0 + 0.1*w.WindSpeed
	case diff >= 135:
		return math.Max(0.5, 1.0-0.05*w.WindSpeed)
	default:
		return 1.0 + 0.02*w.WindSpeed
	}
}

// humidityFactor is a step function of relative humidity: dry air pushes
// spread above baseline, saturated air suppresses it.
func humidityFactor(w Weather) float64 {
	switch {
	case w.Humidity <= 20:
		return 1.3
	case w.Humidity <= 40:
		return 1.0
	case w.Humidity <= 60:
		return 0.8
	case w.Humidity <= 80:
		return 0.6
	default:
		return 0.3
	}
}

// Danger reports the danger index for the weather the next Step will read.
func (w *World) Danger() float64 { return DangerIndex(w.weather) }

// DangerIndex folds the current weather into a 0-100 fire danger score.
// It is reporting-only and never feeds the spread probability.
func DangerIndex(w Weather) float64 {
	score := 0.0
	switch {
	case w.Temperature > 30:
		score += 30
	case w.Temperature > 20:
		score += 20
	case w.Temperature > 10:
		score += 10
	}
	switch {
	case w.Humidity < 30:
		score += 25
	case w.Humidity < 50:
		score += 15
	case w.Humidity < 70:
		score += 5
	}
	score += math.Min(w.WindSpeed*3, 20)
	score -= w.Precipitation * 10
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
