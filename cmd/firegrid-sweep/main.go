package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"firegrid/internal/run"
	"firegrid/internal/sims/wildfire"
)

type paramSet struct {
	windSpeed    float64
	humidity     float64
	igniteChance float64
	fuelClass    wildfire.FuelClass
}

func (p paramSet) String() string {
	return fmt.Sprintf("wind=%.1f humidity=%.0f ignite=%.4f fuel=%d",
		p.windSpeed, p.humidity, p.igniteChance, p.fuelClass)
}

type sweepResult struct {
	params         paramSet
	meanBurned     float64
	maxBurned      float64
	meanSteps      float64
	extinguishedIn int
}

func main() {
	steps := flag.Int("steps", 300, "step cap per run")
	seeds := flag.Int("seeds", 8, "seeds per parameter set")
	size := flag.Int("size", 128, "grid edge length")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	windOptions := []float64{0, 5, 15, 30}
	humidityOptions := []float64{15, 35, 55, 85}
	igniteOptions := []float64{0, 0.0005, 0.005}
	fuelOptions := []wildfire.FuelClass{wildfire.FuelShortGrass, wildfire.FuelChaparral, wildfire.FuelClosedTimberLitter}

	var sets []paramSet
	for _, wind := range windOptions {
		for _, humidity := range humidityOptions {
			for _, ignite := range igniteOptions {
				for _, fuel := range fuelOptions {
					sets = append(sets, paramSet{
						windSpeed:    wind,
						humidity:     humidity,
						igniteChance: ignite,
						fuelClass:    fuel,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %d steps)\n", len(sets), *workers, *seeds, *steps)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSet(params, *size, *steps, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].meanBurned > all[j].meanBurned })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) burned=%.1f%% max=%.1f%% steps=%.0f extinguished=%d/%d params=%s\n",
			i+1, res.meanBurned*100, res.maxBurned*100, res.meanSteps, res.extinguishedIn, *seeds, res.params)
	}
}

func runSet(params paramSet, size, steps, seeds int) sweepResult {
	res := sweepResult{params: params}
	for s := 0; s < seeds; s++ {
		sc := run.DefaultScenario()
		sc.Name = "sweep"
		sc.Width = size
		sc.Height = size
		sc.Seed = int64(1000 + s)
		sc.MaxSteps = steps
		sc.IgniteChance = params.igniteChance
		sc.FuelClass = uint8(params.fuelClass)
		sc.Weather = run.WeatherSpec{
			Temperature:   25,
			Humidity:      params.humidity,
			WindSpeed:     params.windSpeed,
			WindDirection: 180,
		}

		runner, report, err := run.NewRunner(sc)
		if err != nil {
			continue
		}
		out := runner.Run(report)

		res.meanBurned += out.BurnedFraction
		res.meanSteps += float64(out.Steps)
		if out.BurnedFraction > res.maxBurned {
			res.maxBurned = out.BurnedFraction
		}
		if out.Extinguished {
			res.extinguishedIn++
		}
	}
	if seeds > 0 {
		res.meanBurned /= float64(seeds)
		res.meanSteps /= float64(seeds)
	}
	return res
}
