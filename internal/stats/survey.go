package stats

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"pelagos/internal/evo"
)

// SurveyConfig parameterizes a depth survey: for every depth step the whole
// population is pinned to that depth and evolved repeatedly, and the
// surviving categories are averaged across runs.
type SurveyConfig struct {
	Population  int
	Generations int
	Runs        int
	Step        int
	Seed        int64
}

// SurveyPoint holds the averaged survivor counts for one depth.
type SurveyPoint struct {
	Depth          int
	Counts         map[string]float64
	TotalSurvivors float64
}

// DepthSurvey probes every depth from 0 to 6000 at cfg.Step intervals. The
// optional progress callback receives each depth as it completes. Run seeds
// derive deterministically from cfg.Seed.
func DepthSurvey(ctx context.Context, cfg SurveyConfig, progress func(depth int)) ([]SurveyPoint, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("survey runs must be > 0")
	}
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("survey step must be > 0")
	}

	var points []SurveyPoint
	seed := cfg.Seed
	for depth := 0; depth <= 6000; depth += cfg.Step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		counts := map[string][]float64{}
		for _, category := range Categories() {
			counts[category] = make([]float64, cfg.Runs)
		}
		totals := make([]float64, cfg.Runs)

		for run := 0; run < cfg.Runs; run++ {
			seed++
			sim, err := evo.New(evo.Config{
				PopulationSize: cfg.Population,
				Generations:    cfg.Generations,
				Seed:           seed,
			})
			if err != nil {
				return nil, err
			}
			sim.PinDepth(float64(depth))
			if err := sim.Run(ctx, nil); err != nil {
				return nil, err
			}

			for _, c := range sim.Creatures() {
				// The newest generation has not been scored yet.
				evo.EvaluateFitness(&c)
				if !thrives(c.Fitness, sim.Threshold()) {
					continue
				}
				totals[run]++
				category := Categorize(c)
				if _, ok := counts[category]; !ok {
					counts[category] = make([]float64, cfg.Runs)
				}
				counts[category][run]++
			}
		}

		point := SurveyPoint{
			Depth:          depth,
			Counts:         map[string]float64{},
			TotalSurvivors: stat.Mean(totals, nil),
		}
		for category, samples := range counts {
			point.Counts[category] = stat.Mean(samples, nil)
		}
		points = append(points, point)

		if progress != nil {
			progress(depth)
		}
	}
	return points, nil
}

// thrives is stricter than the simulation's survival rule on purpose: a
// creature sitting exactly at the threshold stays alive inside a run but does
// not count as thriving at the surveyed depth.
func thrives(fitness, threshold float64) bool {
	return fitness > threshold
}
