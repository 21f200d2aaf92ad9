package wildfire

import (
	"strconv"

	"firegrid/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("fuel_class", "Fuel class", int(w.cfg.FuelClass)),
			},
		},
		{
			Name: "Weather",
			Params: []core.Parameter{
				floatParam("temperature", "Temperature °C", w.weather.Temperature),
				floatParam("humidity", "Humidity %", w.weather.Humidity),
				floatParam("wind_speed", "Wind speed m/s", w.weather.WindSpeed),
				floatParam("wind_direction", "Wind direction °", w.weather.WindDirection),
				floatParam("precipitation", "Precipitation mm/h", w.weather.Precipitation),
			},
		},
		{
			Name: "Ignition",
			Params: []core.Parameter{
				floatParam("ignite_chance", "Spontaneous ignition chance", w.cfg.Params.IgniteChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust live.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wind_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "wind_direction", Label: "Wind direction", Type: core.ParamTypeFloat, Step: 15, Min: 0, Max: 360, HasMin: true, HasMax: true},
		{Key: "humidity", Label: "Humidity", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 1, Min: -20, Max: 50, HasMin: true, HasMax: true},
		{Key: "ignite_chance", Label: "Ignite chance", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a live-tunable weather or ignition value,
// clamping to the control bounds. Unknown keys return false.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "wind_speed":
		w.weather.WindSpeed = clampRange(value, 0, 50)
	case "wind_direction":
		w.weather.WindDirection = clampRange(value, 0, 360)
	case "humidity":
		w.weather.Humidity = clampRange(value, 0, 100)
	case "temperature":
		w.weather.Temperature = clampRange(value, -20, 50)
	case "precipitation":
		w.weather.Precipitation = clampRange(value, 0, 100)
	case "ignite_chance":
		w.cfg.Params.IgniteChance = clampRange(value, 0, 1)
	default:
		return false
	}
	return true
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
