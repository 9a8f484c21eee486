package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"

	"pelagos/internal/model"
)

// SpeciesLogRow is the flat CSV form of one species in one generation.
type SpeciesLogRow struct {
	Generation  int     `csv:"generation"`
	Species     string  `csv:"species"`
	Count       int     `csv:"count"`
	MeanFitness float64 `csv:"mean_fitness"`
	MinDepth    float64 `csv:"min_depth"`
	MaxDepth    float64 `csv:"max_depth"`
}

// GenerationRow is the flat CSV form of one generation's diagnostics.
type GenerationRow struct {
	Generation   int     `csv:"generation"`
	BestFitness  float64 `csv:"best_fitness"`
	MeanFitness  float64 `csv:"mean_fitness"`
	AliveCount   int     `csv:"alive_count"`
	SpeciesCount int     `csv:"species_count"`
}

// SurveyRow is the flat CSV form of one depth-survey point.
type SurveyRow struct {
	Depth           int     `csv:"depth"`
	Eyes            float64 `csv:"eyes"`
	Bioluminescence float64 `csv:"bioluminescence"`
	Plants          float64 `csv:"plants"`
	NoEyesAnimals   float64 `csv:"no_eyes_animals"`
	Echolocation    float64 `csv:"echolocation"`
	LateralLine     float64 `csv:"lateral_line"`
	CompoundEyes    float64 `csv:"compound_eyes"`
	TotalSurvivors  float64 `csv:"total_survivors"`
}

// ExportRun writes a run's artifacts under dir/<run_id>/: the run record and
// population as JSON, and the species log and generation stats as CSV.
// It returns the artifact directory.
func ExportRun(dir string, run model.RunRecord, population model.Population, log []model.SpeciesLogEntry, generations []model.GenerationStats) (string, error) {
	outDir := filepath.Join(dir, run.RunID)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(outDir, "run.json"), run); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(outDir, "population.json"), population); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(outDir, "species_log.csv"), speciesLogRows(log)); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(outDir, "generations.csv"), generationRows(generations)); err != nil {
		return "", err
	}
	return outDir, nil
}

// ExportSurvey writes depth-survey points as CSV to path.
func ExportSurvey(path string, points []SurveyPoint) error {
	rows := make([]SurveyRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, SurveyRow{
			Depth:           point.Depth,
			Eyes:            point.Counts[CategoryEyes],
			Bioluminescence: point.Counts[CategoryBioluminescence],
			Plants:          point.Counts[CategoryPlants],
			NoEyesAnimals:   point.Counts[CategoryNoEyesAnimal],
			Echolocation:    point.Counts[CategoryEcholocation],
			LateralLine:     point.Counts[CategoryLateralLine],
			CompoundEyes:    point.Counts[CategoryCompoundEyes],
			TotalSurvivors:  point.TotalSurvivors,
		})
	}
	return writeCSV(path, rows)
}

func speciesLogRows(log []model.SpeciesLogEntry) []SpeciesLogRow {
	var rows []SpeciesLogRow
	for _, entry := range log {
		names := make([]string, 0, len(entry.Species))
		for name := range entry.Species {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := entry.Species[name]
			rows = append(rows, SpeciesLogRow{
				Generation:  entry.Generation,
				Species:     name,
				Count:       s.Count,
				MeanFitness: s.MeanFitness,
				MinDepth:    s.MinDepth,
				MaxDepth:    s.MaxDepth,
			})
		}
	}
	return rows
}

func generationRows(generations []model.GenerationStats) []GenerationRow {
	rows := make([]GenerationRow, 0, len(generations))
	for _, g := range generations {
		rows = append(rows, GenerationRow{
			Generation:   g.Generation,
			BestFitness:  g.BestFitness,
			MeanFitness:  g.MeanFitness,
			AliveCount:   g.AliveCount,
			SpeciesCount: g.SpeciesCount,
		})
	}
	return rows
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeCSV[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
