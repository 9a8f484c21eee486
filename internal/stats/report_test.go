package stats

import (
	"math"
	"strings"
	"testing"

	"pelagos/internal/creature"
	"pelagos/internal/model"
)

func TestWriteSpeciesReport(t *testing.T) {
	species := map[string]model.SpeciesStats{
		"Meso lucidus":       {Count: 4, MeanFitness: 3.25, MinDepth: 300, MaxDepth: 800},
		"Superficie opticus": {Count: 2, MeanFitness: 5.0, MinDepth: 10, MaxDepth: 90},
	}
	var buf strings.Builder
	if err := WriteSpeciesReport(&buf, species); err != nil {
		t.Fatalf("WriteSpeciesReport: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "2 species\n") {
		t.Fatalf("missing species count header in:\n%s", out)
	}
	mesoIdx := strings.Index(out, "Meso lucidus")
	superIdx := strings.Index(out, "Superficie opticus")
	if mesoIdx < 0 || superIdx < 0 || mesoIdx > superIdx {
		t.Fatalf("species not sorted alphabetically in:\n%s", out)
	}
	if !strings.Contains(out, "depth=300-800m") {
		t.Fatalf("missing depth range in:\n%s", out)
	}
}

func TestWritePopulationReportSkipsDead(t *testing.T) {
	alive := creature.NewWithTraits(50, model.Traits{
		Vision: creature.VisionEyes, Size: creature.SizeSmall,
	})
	dead := creature.NewWithTraits(50, model.Traits{
		Vision: creature.VisionNoEyes, Size: creature.SizeSmall,
	})
	dead.Alive = false

	var buf strings.Builder
	if err := WritePopulationReport(&buf, []model.Creature{alive, dead}); err != nil {
		t.Fatalf("WritePopulationReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Superficie opticus") {
		t.Fatalf("missing living creature in:\n%s", out)
	}
	if strings.Contains(out, "caecus") {
		t.Fatalf("dead creature listed in:\n%s", out)
	}
}

func TestSummarizeFitness(t *testing.T) {
	creatures := []model.Creature{
		{Fitness: 2}, {Fitness: 4}, {Fitness: 6},
	}
	summary := SummarizeFitness(creatures)
	if summary.Mean != 4 {
		t.Fatalf("mean = %v, want 4", summary.Mean)
	}
	if summary.Best != 6 {
		t.Fatalf("best = %v, want 6", summary.Best)
	}
	if math.Abs(summary.StdDev-2) > 1e-9 {
		t.Fatalf("stddev = %v, want 2", summary.StdDev)
	}

	if got := SummarizeFitness(nil); got != (FitnessSummary{}) {
		t.Fatalf("empty summary = %+v, want zero value", got)
	}
	single := SummarizeFitness([]model.Creature{{Fitness: 3}})
	if single.StdDev != 0 || single.Mean != 3 {
		t.Fatalf("single summary = %+v", single)
	}
}
