package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pelagos/internal/model"
)

func TestExportRun(t *testing.T) {
	dir := t.TempDir()
	run := model.RunRecord{RunID: "test-run", Seed: 7, PopulationSize: 10, Generations: 2}
	population := model.Population{
		ID:         "pop",
		Generation: 2,
		Creatures:  []model.Creature{{ID: "c1", SpeciesName: "Abysso caecus", Depth: 5000}},
	}
	log := []model.SpeciesLogEntry{
		{Generation: 1, TotalSpecies: 1, Species: map[string]model.SpeciesStats{
			"Abysso caecus": {Count: 10, MeanFitness: 2.0, MinDepth: 4500, MaxDepth: 5500},
		}},
	}
	generations := []model.GenerationStats{
		{Generation: 1, BestFitness: 4.0, MeanFitness: 2.0, AliveCount: 8, SpeciesCount: 1},
	}

	outDir, err := ExportRun(dir, run, population, log, generations)
	if err != nil {
		t.Fatalf("ExportRun: %v", err)
	}
	if outDir != filepath.Join(dir, "test-run") {
		t.Fatalf("outDir = %q", outDir)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "run.json"))
	if err != nil {
		t.Fatalf("reading run.json: %v", err)
	}
	var gotRun model.RunRecord
	if err := json.Unmarshal(data, &gotRun); err != nil {
		t.Fatalf("parsing run.json: %v", err)
	}
	if gotRun.RunID != "test-run" || gotRun.Seed != 7 {
		t.Fatalf("run.json mismatch: %+v", gotRun)
	}

	data, err = os.ReadFile(filepath.Join(outDir, "species_log.csv"))
	if err != nil {
		t.Fatalf("reading species_log.csv: %v", err)
	}
	csv := string(data)
	if !strings.Contains(csv, "generation,species,count,mean_fitness,min_depth,max_depth") {
		t.Fatalf("missing CSV header in:\n%s", csv)
	}
	if !strings.Contains(csv, "Abysso caecus") {
		t.Fatalf("missing species row in:\n%s", csv)
	}

	data, err = os.ReadFile(filepath.Join(outDir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}
	if !strings.Contains(string(data), "best_fitness") {
		t.Fatalf("missing generations header in:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(outDir, "population.json")); err != nil {
		t.Fatalf("population.json: %v", err)
	}
}

func TestExportSurvey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	points := []SurveyPoint{
		{Depth: 0, Counts: map[string]float64{CategoryEyes: 12.5}, TotalSurvivors: 20},
		{Depth: 200, Counts: map[string]float64{CategoryPlants: 3}, TotalSurvivors: 8},
	}
	if err := ExportSurvey(path, points); err != nil {
		t.Fatalf("ExportSurvey: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading survey.csv: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "depth,eyes,bioluminescence,plants") {
		t.Fatalf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "12.5") {
		t.Fatalf("missing value row in:\n%s", out)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines != 2 {
		t.Fatalf("line breaks = %d, want 2 (header plus two rows)", lines)
	}
}
