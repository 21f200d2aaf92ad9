package run

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"firegrid/internal/core"
	"firegrid/internal/sims/wildfire"
)

// WeatherSpec mirrors wildfire.Weather with YAML tags so scenario files can
// spell out conditions. Zero-valued specs fall back to the documented
// default weather.
type WeatherSpec struct {
	Temperature   float64 `yaml:"temperature"`
	Humidity      float64 `yaml:"humidity"`
	WindSpeed     float64 `yaml:"wind_speed"`
	WindDirection float64 `yaml:"wind_direction"`
	Precipitation float64 `yaml:"precipitation"`
}

func (s WeatherSpec) toWeather() wildfire.Weather {
	if s == (WeatherSpec{}) {
		return wildfire.DefaultWeather()
	}
	return wildfire.Weather{
		Temperature:   s.Temperature,
		Humidity:      s.Humidity,
		WindSpeed:     s.WindSpeed,
		WindDirection: s.WindDirection,
		Precipitation: s.Precipitation,
	}
}

// WeatherAt schedules a weather change to take effect before the given
// step. It models the external weather source updating between steps.
type WeatherAt struct {
	Step    int         `yaml:"step"`
	Weather WeatherSpec `yaml:"weather"`
}

// FuelBand overrides the uniform fuel class for rows [FromRow, ToRow).
type FuelBand struct {
	FromRow int   `yaml:"from_row"`
	ToRow   int   `yaml:"to_row"`
	Class   uint8 `yaml:"class"`
}

// Scenario describes a reproducible headless run.
type Scenario struct {
	Name         string  `yaml:"name"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Seed         int64   `yaml:"seed"`
	MaxSteps     int     `yaml:"max_steps"`
	IgniteChance float64 `yaml:"ignite_chance"`

	FuelClass uint8      `yaml:"fuel_class"`
	FuelBands []FuelBand `yaml:"fuel_bands"`

	// ElevationPerRow raises each row by this many meters toward row 0,
	// giving a constant south-facing incline for terrain-sensitive runs.
	ElevationPerRow float32 `yaml:"elevation_per_row"`
	Slope           float32 `yaml:"slope"`
	Aspect          float32 `yaml:"aspect"`

	Ignitions [][2]int `yaml:"ignitions"`

	Weather  WeatherSpec `yaml:"weather"`
	Schedule []WeatherAt `yaml:"weather_schedule"`
}

// DefaultScenario returns a small single-ignition grass fire.
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "grass-fire",
		Width:     128,
		Height:    128,
		Seed:      42,
		MaxSteps:  500,
		FuelClass: uint8(wildfire.FuelTallGrass),
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()
	raw, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return sc, fmt.Errorf("run: parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}

// Validate rejects structurally unusable scenarios. Per-cell data quality
// issues (bad fuel codes, off-grid ignitions) are absorbed downstream.
func (sc *Scenario) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("run: scenario %q has invalid grid size %dx%d", sc.Name, sc.Width, sc.Height)
	}
	if sc.MaxSteps <= 0 {
		sc.MaxSteps = DefaultScenario().MaxSteps
	}
	if sc.IgniteChance < 0 || sc.IgniteChance > 1 {
		return fmt.Errorf("run: scenario %q ignite_chance %v outside [0,1]", sc.Name, sc.IgniteChance)
	}
	sort.SliceStable(sc.Schedule, func(i, j int) bool { return sc.Schedule[i].Step < sc.Schedule[j].Step })
	return nil
}

// BuildEnvironment assembles the static terrain the scenario describes.
func (sc *Scenario) BuildEnvironment() (*wildfire.Environment, error) {
	total := sc.Width * sc.Height
	fuel := make([]wildfire.FuelClass, total)
	for i := range fuel {
		fuel[i] = wildfire.FuelClass(sc.FuelClass)
	}
	for _, band := range sc.FuelBands {
		for y := band.FromRow; y < band.ToRow; y++ {
			if y < 0 || y >= sc.Height {
				continue
			}
			for x := 0; x < sc.Width; x++ {
				fuel[core.Index(sc.Width, x, y)] = wildfire.FuelClass(band.Class)
			}
		}
	}

	var elevation, slope, aspect []float32
	if sc.ElevationPerRow != 0 || sc.Slope != 0 || sc.Aspect != 0 {
		elevation = make([]float32, total)
		slope = make([]float32, total)
		aspect = make([]float32, total)
		for y := 0; y < sc.Height; y++ {
			rowElev := sc.ElevationPerRow * float32(sc.Height-1-y)
			for x := 0; x < sc.Width; x++ {
				idx := core.Index(sc.Width, x, y)
				elevation[idx] = rowElev
				slope[idx] = sc.Slope
				aspect[idx] = sc.Aspect
			}
		}
	}

	return wildfire.NewEnvironment(sc.Width, sc.Height, fuel, elevation, slope, aspect, nil)
}

// NewWorld builds a ready-to-run world: environment, initial grid with the
// scenario ignitions already alight, seeded RNG and scenario weather. The
// second result counts ignition points that fell outside the grid and were
// skipped.
func (sc *Scenario) NewWorld() (*wildfire.World, int, error) {
	env, err := sc.BuildEnvironment()
	if err != nil {
		return nil, 0, err
	}
	initial := make([]wildfire.CellState, sc.Width*sc.Height)
	for i := range initial {
		initial[i] = wildfire.CellFuel
	}

	// Ignitions are baked into the initial grid so a Reset replays the
	// whole scenario start, not just the fuel layout.
	points := sc.Ignitions
	if len(points) == 0 {
		points = [][2]int{{sc.Width / 2, sc.Height / 2}}
	}
	skipped := 0
	for _, pt := range points {
		if !core.InBounds(sc.Width, sc.Height, pt[0], pt[1]) {
			skipped++
			continue
		}
		initial[core.Index(sc.Width, pt[0], pt[1])] = wildfire.CellBurning
	}

	world, err := wildfire.New(env, initial, sc.Seed)
	if err != nil {
		return nil, 0, err
	}
	world.SetWeather(sc.Weather.toWeather())
	world.SetFloatParameter("ignite_chance", sc.IgniteChance)
	return world, skipped, nil
}
