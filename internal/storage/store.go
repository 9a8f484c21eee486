// Package storage persists simulation runs: the run record, the final
// population, the species log, and per-generation stats, keyed by run ID.
package storage

import (
	"context"

	"pelagos/internal/model"
)

// Store defines the persistence operations the run archive needs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, runID string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SavePopulation(ctx context.Context, runID string, population model.Population) error
	GetPopulation(ctx context.Context, runID string) (model.Population, bool, error)
	SaveSpeciesLog(ctx context.Context, runID string, log []model.SpeciesLogEntry) error
	GetSpeciesLog(ctx context.Context, runID string) ([]model.SpeciesLogEntry, bool, error)
	SaveGenerationStats(ctx context.Context, runID string, stats []model.GenerationStats) error
	GetGenerationStats(ctx context.Context, runID string) ([]model.GenerationStats, bool, error)
}
