// Package stats turns simulation output into reports and exported artifacts:
// text summaries, JSON/CSV files, and depth-band survivor aggregations.
package stats

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"pelagos/internal/creature"
	"pelagos/internal/model"
)

// WriteSpeciesReport renders a species summary as a sorted text table:
// one line per species with count, mean fitness, and depth range.
func WriteSpeciesReport(w io.Writer, species map[string]model.SpeciesStats) error {
	names := make([]string, 0, len(species))
	for name := range species {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "%d species\n", len(names)); err != nil {
		return err
	}
	for _, name := range names {
		s := species[name]
		_, err := fmt.Fprintf(w, "%-24s count=%-4d mean_fitness=%-8.2f depth=%.0f-%.0fm\n",
			name, s.Count, s.MeanFitness, s.MinDepth, s.MaxDepth)
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePopulationReport lists one description line per living creature.
func WritePopulationReport(w io.Writer, creatures []model.Creature) error {
	for _, c := range creatures {
		if !c.Alive {
			continue
		}
		if _, err := fmt.Fprintln(w, creature.Describe(c)); err != nil {
			return err
		}
	}
	return nil
}

// FitnessSummary reduces a population to mean and standard deviation of
// fitness, plus the best creature's fitness.
type FitnessSummary struct {
	Mean   float64
	StdDev float64
	Best   float64
}

func SummarizeFitness(creatures []model.Creature) FitnessSummary {
	if len(creatures) == 0 {
		return FitnessSummary{}
	}
	values := make([]float64, len(creatures))
	best := creatures[0].Fitness
	for i, c := range creatures {
		values[i] = c.Fitness
		if c.Fitness > best {
			best = c.Fitness
		}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}
	return FitnessSummary{Mean: mean, StdDev: std, Best: best}
}
