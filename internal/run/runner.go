package run

import (
	"time"

	"github.com/google/uuid"

	"firegrid/internal/core"
	"firegrid/internal/sims/wildfire"
)

// Runner drives a world's step loop until extinction or the step cap. It is
// deliberately thin: all simulation semantics live in the wildfire engine.
type Runner struct {
	World    *wildfire.World
	MaxSteps int

	// TPS paces the loop for live observation; zero runs flat out.
	TPS int

	// Schedule applies external weather updates between steps.
	Schedule []WeatherAt

	// OnStep receives the step index and a read-only snapshot after each
	// committed step. The engine grid is never exposed live.
	OnStep func(step int, cells []wildfire.CellState)
}

// Report summarizes a finished run.
type Report struct {
	RunID          string
	Scenario       string
	Steps          int
	Extinguished   bool
	Counts         wildfire.Counts
	BurnedFraction float64
	DangerIndex    float64

	// SkippedIgnitions counts configured ignition points that fell outside
	// the grid; they are reported, never fatal.
	SkippedIgnitions int
}

// NewRunner wires a runner from a scenario. Out-of-grid ignition points are
// carried into the report.
func NewRunner(sc Scenario) (*Runner, *Report, error) {
	world, skipped, err := sc.NewWorld()
	if err != nil {
		return nil, nil, err
	}
	report := &Report{
		RunID:            uuid.NewString(),
		Scenario:         sc.Name,
		SkippedIgnitions: skipped,
	}
	return &Runner{
		World:    world,
		MaxSteps: sc.MaxSteps,
		Schedule: sc.Schedule,
	}, report, nil
}

// Run executes the step loop and fills in the report. The loop stops as
// soon as the world is extinguished: without an external ignition no
// further step can change the grid. A world with nothing burning at entry
// is not charged a step.
func (r *Runner) Run(report *Report) Report {
	if report == nil {
		report = &Report{RunID: uuid.NewString()}
	}

	var pacing *core.FixedStep
	if r.TPS > 0 {
		pacing = core.NewFixedStep(r.TPS)
	}

	scheduleAt := 0
	for step := 0; step < r.MaxSteps; step++ {
		if r.World.IsExtinguished() {
			break
		}
		for scheduleAt < len(r.Schedule) && r.Schedule[scheduleAt].Step <= step {
			r.World.SetWeather(r.Schedule[scheduleAt].Weather.toWeather())
			scheduleAt++
		}

		r.World.Step()
		if r.OnStep != nil {
			r.OnStep(r.World.StepCount(), r.World.Snapshot())
		}
		if r.World.IsExtinguished() {
			break
		}
		if pacing != nil {
			time.Sleep(pacing.Interval())
		}
	}

	report.Steps = r.World.StepCount()
	report.Extinguished = r.World.IsExtinguished()
	report.Counts = r.World.CountStates()
	report.DangerIndex = wildfire.DangerIndex(r.World.Weather())
	size := r.World.Size()
	if total := size.W * size.H; total > 0 {
		report.BurnedFraction = float64(report.Counts.Burned) / float64(total)
	}
	return *report
}
