package wildfire

import (
	"firegrid/internal/core"
)

// CellState enumerates the per-cell burn states. The automaton is one-way:
// Fuel -> Burning -> Burned, with Burned terminal and Unburnable inert.
type CellState uint8

const (
	CellUnburnable CellState = iota
	CellFuel
	CellBurning
	CellBurned
)

// World owns the mutable burn state grid, the step counter and the random
// stream. The environment it reads from is shared and immutable.
type World struct {
	cfg Config

	w, h int
	env  *Environment

	curr []CellState
	next []CellState

	// initial holds the construction-time state grid for worlds built via
	// New, so Reset replays it. Registry worlds rebuild from cfg instead.
	initial []CellState

	weather Weather
	display []uint8

	rng   *core.RNG
	steps int
}

// New constructs a World over an existing environment and initial state
// grid. The state grid is copied so the caller's slice stays untouched.
// A state grid whose length disagrees with the environment dimensions is a
// construction bug and fails fast.
func New(env *Environment, initial []CellState, seed int64) (*World, error) {
	size := env.Size()
	total := size.W * size.H
	if len(initial) != total {
		return nil, &ShapeMismatchError{Layer: "state", Want: total, Got: len(initial)}
	}
	w := &World{
		cfg:     DefaultConfig(),
		w:       size.W,
		h:       size.H,
		env:     env,
		curr:    append([]CellState(nil), initial...),
		next:    make([]CellState, total),
		initial: append([]CellState(nil), initial...),
		weather: DefaultWeather(),
		display: make([]uint8, total),
		rng:     core.NewRNG(seed),
	}
	w.cfg.Width = size.W
	w.cfg.Height = size.H
	w.cfg.Seed = seed
	w.rebuildDisplay()
	return w, nil
}

// NewWithConfig builds a uniform-fuel world from the provided options. It
// backs the sim registry; scenario-driven construction goes through New.
func NewWithConfig(cfg Config) *World {
	env := NewUniformEnvironment(cfg.Width, cfg.Height, cfg.FuelClass)
	size := env.Size()
	w := &World{
		cfg:     cfg,
		w:       size.W,
		h:       size.H,
		env:     env,
		curr:    make([]CellState, size.W*size.H),
		next:    make([]CellState, size.W*size.H),
		weather: cfg.Weather,
		display: make([]uint8, size.W*size.H),
		rng:     core.NewRNG(cfg.Seed),
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer for rendering.
func (w *World) Cells() []uint8 { return w.display }

// Environment exposes the static terrain the world was built over.
func (w *World) Environment() *Environment { return w.env }

// Weather returns the conditions the next Step will read.
func (w *World) Weather() Weather { return w.weather }

// SetWeather replaces the current conditions. Call it between steps; the
// engine itself has no weather time series.
func (w *World) SetWeather(weather Weather) { w.weather = weather }

// StepCount reports how many steps have been committed.
func (w *World) StepCount() int { return w.steps }

// Reset rewinds the world to its starting grid and reseeds the random
// stream. Worlds built via New replay the state grid they were constructed
// with; registry worlds rebuild from the config instead: every burnable
// cell holds fuel, masked cells are unburnable, and the configured ignition
// points are set alight. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.steps = 0
	if w.initial != nil {
		copy(w.curr, w.initial)
		copy(w.next, w.initial)
		w.rebuildDisplay()
		return
	}
	for i := range w.curr {
		w.curr[i] = CellFuel
		w.next[i] = CellFuel
	}
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if !w.env.CanBurn(x, y) {
				idx := core.Index(w.w, x, y)
				w.curr[idx] = CellUnburnable
				w.next[idx] = CellUnburnable
			}
		}
	}
	points := w.cfg.IgnitionPoints
	if len(points) == 0 {
		points = [][2]int{{w.w / 2, w.h / 2}}
	}
	for _, pt := range points {
		w.Ignite(pt[0], pt[1])
	}
	w.rebuildDisplay()
}

// Ignite forces the cell at (x, y) to Burning, overriding an unburnable
// state. Burned cells are terminal and stay put. Out-of-bounds coordinates
// are ignored and reported via the return value; batch setups routinely
// compute ignition points that drift off-grid and must not crash a long
// run.
func (w *World) Ignite(x, y int) bool {
	if !core.InBounds(w.w, w.h, x, y) {
		return false
	}
	idx := core.Index(w.w, x, y)
	if w.curr[idx] == CellBurned {
		return false
	}
	w.curr[idx] = CellBurning
	w.display[idx] = uint8(CellBurning)
	return true
}

// Step advances the automaton by one synchronous tick. All reads observe
// the pre-step grid; cells are visited in row-major order and draw from the
// single owned RNG stream, so identical seeds replay bit-identically.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	copy(w.next, w.curr)

	spontaneous := w.cfg.Params.IgniteChance
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := core.Index(w.w, x, y)
			switch w.curr[idx] {
			case CellBurning:
				// Fire consumes a cell in exactly one step.
				w.next[idx] = CellBurned
			case CellFuel:
				if p := w.ignitionProbability(x, y); p > 0 {
					if w.rng.Float64() < p {
						w.next[idx] = CellBurning
						continue
					}
				}
				if spontaneous > 0 && w.env.CanBurn(x, y) && w.rng.Float64() < spontaneous {
					w.next[idx] = CellBurning
				}
			}
		}
	}

	w.curr, w.next = w.next, w.curr
	w.steps++
	w.rebuildDisplay()
}

// ignitionProbability returns the combined chance that the fuel cell at
// (x, y) catches fire this step. A cell with several burning neighbors is
// evaluated once against the strongest edge: any adjacent fire can ignite
// it, so the max governs the single draw.
func (w *World) ignitionProbability(x, y int) float64 {
	if !w.env.CanBurn(x, y) {
		return 0
	}
	best := 0.0
	for _, off := range core.MooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if !core.InBounds(w.w, w.h, nx, ny) {
			continue
		}
		if w.curr[core.Index(w.w, nx, ny)] != CellBurning {
			continue
		}
		if p := w.edgeProbability(nx, ny, x, y); p > best {
			best = p
		}
	}
	return best
}

// edgeProbability composes the fuel-driven base with the weather and
// terrain multipliers for the directed edge (fromX, fromY) -> (toX, toY).
func (w *World) edgeProbability(fromX, fromY, toX, toY int) float64 {
	p := w.env.BaseSpreadProbability(fromX, fromY, toX, toY)
	p *= windFactor(toX-fromX, toY-fromY, w.weather)
	p *= humidityFactor(w.weather)
	p *= terrainFactor(fromX, fromY, toX, toY, w.env, w.weather.WindDirection)
	return clamp01(p)
}

// IsExtinguished reports whether no cell is currently burning. Once true
// and with spontaneous ignition disabled, further steps cannot change the
// grid.
func (w *World) IsExtinguished() bool {
	for _, s := range w.curr {
		if s == CellBurning {
			return false
		}
	}
	return true
}

// Snapshot returns a read-only copy of the state grid for external
// consumers. The live grid is never handed out.
func (w *World) Snapshot() []CellState {
	return append([]CellState(nil), w.curr...)
}

// StateAt returns the state of the cell at (x, y), Unburnable when out of
// bounds.
func (w *World) StateAt(x, y int) CellState {
	if !core.InBounds(w.w, w.h, x, y) {
		return CellUnburnable
	}
	return w.curr[core.Index(w.w, x, y)]
}

// Counts tallies the current grid by state.
type Counts struct {
	Unburnable int
	Fuel       int
	Burning    int
	Burned     int
}

// CountStates walks the grid once and returns the per-state totals.
func (w *World) CountStates() Counts {
	var c Counts
	for _, s := range w.curr {
		switch s {
		case CellFuel:
			c.Fuel++
		case CellBurning:
			c.Burning++
		case CellBurned:
			c.Burned++
		default:
			c.Unburnable++
		}
	}
	return c
}

// clamp01 bounds a composed probability to [0, 1]. Anything outside the
// range indicates a modifier composition bug upstream, so the clamp is
// defensive rather than semantic.
func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
