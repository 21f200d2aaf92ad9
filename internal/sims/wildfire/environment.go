package wildfire

import (
	"fmt"

	"firegrid/internal/core"
)

// ShapeMismatchError reports a layer whose cell count disagrees with the
// grid dimensions. It is fatal at construction time.
type ShapeMismatchError struct {
	Layer string
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("wildfire: %s layer has %d cells, want %d", e.Layer, e.Got, e.Want)
}

// Environment holds the static per-cell attributes for a simulation run:
// fuel class, elevation (m), slope and aspect (degrees, aspect 0 = north)
// and a burnable mask. It is built once from external GIS layers and never
// mutated while a World is running.
type Environment struct {
	w, h int

	fuel      []FuelClass
	elevation []float32
	slope     []float32
	aspect    []float32
	burnable  []bool

	defaultedCells int
}

// NewEnvironment assembles an environment from row-major layers. All layers
// must have w*h cells; elevation, slope, aspect and burnable may be nil for
// flat, fully burnable terrain. Cells with a fuel identifier missing from
// the fuel table are remapped to the unknown class rather than rejected.
func NewEnvironment(w, h int, fuel []FuelClass, elevation, slope, aspect []float32, burnable []bool) (*Environment, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("wildfire: invalid grid size %dx%d", w, h)
	}
	total := w * h
	if len(fuel) != total {
		return nil, &ShapeMismatchError{Layer: "fuel", Want: total, Got: len(fuel)}
	}
	env := &Environment{
		w:         w,
		h:         h,
		fuel:      make([]FuelClass, total),
		elevation: make([]float32, total),
		slope:     make([]float32, total),
		aspect:    make([]float32, total),
		burnable:  make([]bool, total),
	}
	for i, id := range fuel {
		if _, defaulted := LookupFuel(id); defaulted {
			env.fuel[i] = FuelUnknown
			env.defaultedCells++
			continue
		}
		env.fuel[i] = id
	}
	if err := copyLayer(env.elevation, elevation, "elevation", total); err != nil {
		return nil, err
	}
	if err := copyLayer(env.slope, slope, "slope", total); err != nil {
		return nil, err
	}
	if err := copyLayer(env.aspect, aspect, "aspect", total); err != nil {
		return nil, err
	}
	if burnable == nil {
		for i := range env.burnable {
			env.burnable[i] = true
		}
	} else {
		if len(burnable) != total {
			return nil, &ShapeMismatchError{Layer: "burnable", Want: total, Got: len(burnable)}
		}
		copy(env.burnable, burnable)
	}
	return env, nil
}

// NewUniformEnvironment builds a flat, fully burnable environment with a
// single fuel class everywhere. Non-positive dimensions are clamped to 1.
func NewUniformEnvironment(w, h int, class FuelClass) *Environment {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fuel := make([]FuelClass, w*h)
	for i := range fuel {
		fuel[i] = class
	}
	env, _ := NewEnvironment(w, h, fuel, nil, nil, nil, nil)
	return env
}

func copyLayer(dst, src []float32, name string, total int) error {
	if src == nil {
		return nil
	}
	if len(src) != total {
		return &ShapeMismatchError{Layer: name, Want: total, Got: len(src)}
	}
	copy(dst, src)
	return nil
}

// Size reports the grid dimensions.
func (e *Environment) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// DefaultedFuelCells reports how many cells carried an unknown fuel
// identifier and were remapped at construction.
func (e *Environment) DefaultedFuelCells() int { return e.defaultedCells }

// CanBurn reports whether the cell's burnable mask permits ignition.
// Out-of-bounds coordinates are never burnable.
func (e *Environment) CanBurn(x, y int) bool {
	if !core.InBounds(e.w, e.h, x, y) {
		return false
	}
	return e.burnable[core.Index(e.w, x, y)]
}

// FuelAt resolves the fuel record for a cell. The second result mirrors
// LookupFuel's defaulted flag; out-of-bounds cells resolve to unknown.
func (e *Environment) FuelAt(x, y int) (FuelRecord, bool) {
	if !core.InBounds(e.w, e.h, x, y) {
		return unknownFuel, true
	}
	return LookupFuel(e.fuel[core.Index(e.w, x, y)])
}

// BaseSpreadProbability returns the unmodified probability that fire
// crosses the directed edge (fromX, fromY) -> (toX, toY) in one step. It is
// a pure function of the target cell's fuel class.
func (e *Environment) BaseSpreadProbability(fromX, fromY, toX, toY int) float64 {
	if !e.CanBurn(toX, toY) {
		return 0
	}
	rec, _ := e.FuelAt(toX, toY)
	return rec.BaseSpread
}

// ElevationAt returns the cell elevation in meters, 0 when out of bounds.
func (e *Environment) ElevationAt(x, y int) float32 {
	if !core.InBounds(e.w, e.h, x, y) {
		return 0
	}
	return e.elevation[core.Index(e.w, x, y)]
}

// SlopeAt returns the cell slope in degrees, 0 when out of bounds.
func (e *Environment) SlopeAt(x, y int) float32 {
	if !core.InBounds(e.w, e.h, x, y) {
		return 0
	}
	return e.slope[core.Index(e.w, x, y)]
}

// AspectAt returns the compass-facing aspect in degrees, 0 when out of bounds.
func (e *Environment) AspectAt(x, y int) float32 {
	if !core.InBounds(e.w, e.h, x, y) {
		return 0
	}
	return e.aspect[core.Index(e.w, x, y)]
}
