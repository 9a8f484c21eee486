// Package pelagos is the public entry point for running and querying ocean
// evolution simulations backed by a run archive.
package pelagos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pelagos/internal/evo"
	"pelagos/internal/model"
	"pelagos/internal/stats"
	"pelagos/internal/storage"
)

type Options struct {
	StoreKind string // memory|sqlite, empty means the build default
	DBPath    string
}

// Client wires simulations to a run archive.
type Client struct {
	store storage.Store
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	kind := opts.StoreKind
	if kind == "" {
		kind = storage.DefaultStoreKind()
	}
	store, err := storage.NewStore(kind, opts.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// RunRequest describes one simulation run. Zero-valued tuning fields take
// the engine defaults.
type RunRequest struct {
	RunID             string
	Population        int
	Generations       int
	Seed              int64
	MutationRate      float64
	SurvivalThreshold float64
	MinSurvivors      int
	EliteFallback     int
	DepthJitter       float64

	// Progress, when set, is called once per completed generation.
	Progress func()
}

type RunSummary struct {
	RunID        string
	Generations  int
	TotalSpecies int
	BestFitness  float64
	Fitness      stats.FitnessSummary
}

// Run executes a full simulation, archives the run record, final population,
// species log, and generation stats, and returns a summary.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	sim, err := evo.New(evo.Config{
		PopulationSize:    req.Population,
		Generations:       req.Generations,
		Seed:              req.Seed,
		MutationRate:      req.MutationRate,
		SurvivalThreshold: req.SurvivalThreshold,
		MinSurvivors:      req.MinSurvivors,
		EliteFallback:     req.EliteFallback,
		DepthJitter:       req.DepthJitter,
	})
	if err != nil {
		return RunSummary{}, err
	}
	if err := sim.Run(ctx, req.Progress); err != nil {
		return RunSummary{}, err
	}

	creatures := sim.Creatures()
	log := sim.SpeciesLog()
	generations := sim.GenerationStats()

	best := 0.0
	for _, g := range generations {
		if g.BestFitness > best {
			best = g.BestFitness
		}
	}
	totalSpecies := 0
	if len(log) > 0 {
		totalSpecies = log[len(log)-1].TotalSpecies
	}

	run := model.RunRecord{
		RunID:          runID,
		CreatedAtUTC:   time.Now().UTC().Format(time.RFC3339),
		Seed:           req.Seed,
		PopulationSize: req.Population,
		Generations:    req.Generations,
		TotalSpecies:   totalSpecies,
		BestFitness:    best,
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return RunSummary{}, fmt.Errorf("archive run %s: %w", runID, err)
	}
	population := model.Population{
		ID:         runID,
		Generation: sim.GenerationCount(),
		Creatures:  creatures,
	}
	if err := c.store.SavePopulation(ctx, runID, population); err != nil {
		return RunSummary{}, fmt.Errorf("archive population for run %s: %w", runID, err)
	}
	if err := c.store.SaveSpeciesLog(ctx, runID, log); err != nil {
		return RunSummary{}, fmt.Errorf("archive species log for run %s: %w", runID, err)
	}
	if err := c.store.SaveGenerationStats(ctx, runID, generations); err != nil {
		return RunSummary{}, fmt.Errorf("archive generation stats for run %s: %w", runID, err)
	}

	return RunSummary{
		RunID:        runID,
		Generations:  sim.GenerationCount(),
		TotalSpecies: totalSpecies,
		BestFitness:  best,
		Fitness:      stats.SummarizeFitness(creatures),
	}, nil
}

// Runs lists archived run records, newest first.
func (c *Client) Runs(ctx context.Context) ([]model.RunRecord, error) {
	return c.store.ListRuns(ctx)
}

// ResolveRunID returns runID unchanged when set, otherwise the newest
// archived run's ID.
func (c *Client) ResolveRunID(ctx context.Context, runID string) (string, error) {
	if runID != "" {
		return runID, nil
	}
	runs, err := c.store.ListRuns(ctx)
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("no archived runs")
	}
	return runs[0].RunID, nil
}

// SpeciesLog returns the archived per-generation species log of a run.
func (c *Client) SpeciesLog(ctx context.Context, runID string) ([]model.SpeciesLogEntry, error) {
	log, ok, err := c.store.GetSpeciesLog(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no species log for run %s", runID)
	}
	return log, nil
}

// Population returns the archived final population of a run.
func (c *Client) Population(ctx context.Context, runID string) (model.Population, error) {
	population, ok, err := c.store.GetPopulation(ctx, runID)
	if err != nil {
		return model.Population{}, err
	}
	if !ok {
		return model.Population{}, fmt.Errorf("no population for run %s", runID)
	}
	return population, nil
}

// Export writes a run's artifacts under dir and returns the artifact
// directory.
func (c *Client) Export(ctx context.Context, runID, dir string) (string, error) {
	run, ok, err := c.store.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no run %s", runID)
	}
	population, err := c.Population(ctx, runID)
	if err != nil {
		return "", err
	}
	log, err := c.SpeciesLog(ctx, runID)
	if err != nil {
		return "", err
	}
	generations, _, err := c.store.GetGenerationStats(ctx, runID)
	if err != nil {
		return "", err
	}
	return stats.ExportRun(dir, run, population, log, generations)
}
