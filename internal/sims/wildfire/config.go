package wildfire

import "strconv"

// Params holds the tunable probabilities for the wildfire sim.
type Params struct {
	// IgniteChance is the per-cell, per-step probability of spontaneous
	// ignition (lightning and other unmodeled sources). Zero disables it.
	IgniteChance float64
}

// Config controls the wildfire simulation dimensions and initial layout.
type Config struct {
	Width  int
	Height int

	Seed int64

	// FuelClass covers the whole grid when the world is built through
	// NewWithConfig. Mixed-fuel runs construct an Environment directly.
	FuelClass FuelClass

	Weather Weather

	// IgnitionPoints lists (x, y) cells set alight on Reset. Empty means
	// ignite the grid center.
	IgnitionPoints [][2]int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     256,
		Height:    256,
		Seed:      1337,
		FuelClass: FuelTallGrass,
		Weather:   DefaultWeather(),
		Params: Params{
			IgniteChance: 0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fuel_class"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= int(FuelHeavySlash) {
			c.FuelClass = FuelClass(parsed)
		}
	}
	if v, ok := cfg["ignite_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.IgniteChance = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Weather.Temperature = parsed
		}
	}
	if v, ok := cfg["humidity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 100 {
			c.Weather.Humidity = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Weather.WindSpeed = parsed
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 360 {
			c.Weather.WindDirection = parsed
		}
	}
	if v, ok := cfg["precipitation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Weather.Precipitation = parsed
		}
	}
	return c
}
