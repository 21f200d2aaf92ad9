package main

import (
	"flag"
	"fmt"
	"log"

	"firegrid/internal/run"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (empty runs the built-in grass fire)")
	seed := flag.Int64("seed", 0, "override the scenario seed")
	steps := flag.Int("steps", 0, "override the scenario step cap")
	tps := flag.Int("tps", 0, "pace the loop at this many steps per second (0 = flat out)")
	flag.Parse()

	sc := run.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := run.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("load scenario: %v", err)
		}
		sc = loaded
	}
	if *seed != 0 {
		sc.Seed = *seed
	}
	if *steps > 0 {
		sc.MaxSteps = *steps
	}

	runner, report, err := run.NewRunner(sc)
	if err != nil {
		log.Fatalf("scenario setup: %v", err)
	}
	runner.TPS = *tps

	result := runner.Run(report)
	if result.SkippedIgnitions > 0 {
		log.Printf("skipped %d out-of-grid ignition points", result.SkippedIgnitions)
	}

	fmt.Printf("run %s scenario=%q steps=%d extinguished=%v\n", result.RunID, result.Scenario, result.Steps, result.Extinguished)
	fmt.Printf("burned=%d (%.1f%%) burning=%d fuel=%d unburnable=%d danger=%.0f\n",
		result.Counts.Burned, result.BurnedFraction*100, result.Counts.Burning, result.Counts.Fuel, result.Counts.Unburnable, result.DangerIndex)
}
