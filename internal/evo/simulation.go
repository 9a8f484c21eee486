// Package evo runs the generational genetic-algorithm loop over a population
// of ocean creatures.
package evo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"pelagos/internal/creature"
	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

// Config parameterizes a Simulation. Zero values take the documented
// defaults; PopulationSize and Generations are required.
type Config struct {
	PopulationSize int
	Generations    int
	Seed           int64

	// MutationRate is the per-trait mutation probability. Zero means the
	// 0.15 default; a negative value requests mutation-free reproduction
	// (an effective rate of 0).
	MutationRate float64
	// SurvivalThreshold is the fitness a creature needs to stay alive.
	// Zero means the 1.0 default; a negative value disables the cull
	// (every evaluated creature survives).
	SurvivalThreshold float64
	// MinSurvivors triggers the extinction guard: when fewer creatures pass
	// the threshold, the top min(MinSurvivors, N) by fitness are force-marked
	// alive. Default 5.
	MinSurvivors int
	// EliteFallback is how many top survivors pad the next generation when
	// reproduction underfills it. Default 5.
	EliteFallback int
	// DepthJitter bounds the uniform depth perturbation applied to each
	// offspring around its parent, in meters. Default 500.
	DepthJitter float64
}

func (cfg Config) withDefaults() Config {
	if cfg.MutationRate == 0 {
		cfg.MutationRate = creature.DefaultMutationRate
	} else if cfg.MutationRate < 0 {
		cfg.MutationRate = 0
	}
	if cfg.SurvivalThreshold == 0 {
		cfg.SurvivalThreshold = 1.0
	} else if cfg.SurvivalThreshold < 0 {
		cfg.SurvivalThreshold = 0
	}
	if cfg.MinSurvivors == 0 {
		cfg.MinSurvivors = 5
	}
	if cfg.EliteFallback == 0 {
		cfg.EliteFallback = 5
	}
	if cfg.DepthJitter == 0 {
		cfg.DepthJitter = 500
	}
	return cfg
}

// Simulation owns an ordered population of creatures and drives it through
// discrete generations: fitness evaluation, survival marking, reproduction,
// population trim, and diversity logging. It is strictly sequential and not
// safe for concurrent use.
type Simulation struct {
	cfg Config
	rng *rand.Rand

	creatures       []model.Creature
	generationCount int
	speciesLog      []model.SpeciesLogEntry
	generationStats []model.GenerationStats
}

// New creates a Simulation with a randomly constructed population at uniform
// random depths.
func New(cfg Config) (*Simulation, error) {
	s, err := newSimulation(cfg)
	if err != nil {
		return nil, err
	}
	s.creatures = make([]model.Creature, cfg.PopulationSize)
	for i := range s.creatures {
		s.creatures[i] = creature.New(s.rng, s.rng.Float64()*ocean.MaxDepth)
	}
	return s, nil
}

// NewWithPopulation creates a Simulation seeded with an explicit initial
// population, which must match the configured population size.
func NewWithPopulation(cfg Config, initial []model.Creature) (*Simulation, error) {
	s, err := newSimulation(cfg)
	if err != nil {
		return nil, err
	}
	if len(initial) != cfg.PopulationSize {
		return nil, fmt.Errorf("initial population mismatch: got=%d want=%d", len(initial), cfg.PopulationSize)
	}
	s.creatures = make([]model.Creature, len(initial))
	copy(s.creatures, initial)
	return s, nil
}

func newSimulation(cfg Config) (*Simulation, error) {
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be > 0")
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be > 0")
	}
	if cfg.MutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be <= 1")
	}
	cfg = cfg.withDefaults()
	return &Simulation{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run executes the configured number of generations. The optional progress
// callback is invoked exactly once per completed generation. The context is
// checked only at generation boundaries; a generation never stops midway.
func (s *Simulation) Run(ctx context.Context, progress func()) error {
	for gen := 0; gen < s.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.RunGeneration()
		if progress != nil {
			progress()
		}
	}
	return nil
}

// RunGeneration advances the population by one generation. The population
// size is identical before and after.
func (s *Simulation) RunGeneration() {
	s.evaluate()
	stats := s.summarize()

	survivors := s.selectSurvivors()
	s.creatures = s.reproduce(survivors)
	s.generationCount++

	stats.Generation = s.generationCount
	entry := s.logEntry()
	stats.SpeciesCount = entry.TotalSpecies
	s.generationStats = append(s.generationStats, stats)
	s.speciesLog = append(s.speciesLog, entry)
}

func (s *Simulation) evaluate() {
	for i := range s.creatures {
		EvaluateFitness(&s.creatures[i])
		s.creatures[i].Alive = s.creatures[i].Fitness >= s.cfg.SurvivalThreshold
	}
}

// selectSurvivors returns the creatures carried into reproduction, sorted by
// fitness descending. When fewer than MinSurvivors pass the threshold, the
// extinction guard forces the fittest min(MinSurvivors, N) alive so the
// population can never die out entirely.
func (s *Simulation) selectSurvivors() []model.Creature {
	survivors := make([]model.Creature, 0, len(s.creatures))
	for _, c := range s.creatures {
		if c.Alive {
			survivors = append(survivors, c)
		}
	}

	if len(survivors) < s.cfg.MinSurvivors {
		ranked := make([]model.Creature, len(s.creatures))
		copy(ranked, s.creatures)
		sortByFitness(ranked)
		k := s.cfg.MinSurvivors
		if k > len(ranked) {
			k = len(ranked)
		}
		survivors = ranked[:k]
		for i := range survivors {
			survivors[i].Alive = true
		}
	}

	sortByFitness(survivors)
	return survivors
}

// reproduce builds the next generation from the ranked survivors: each parent
// yields floor(max(1, floor(repro_rate)) * min(2, fitness/2)) offspring, each
// a mutation at a jittered depth, until exactly N creatures exist. Underfill
// is padded with mutations of the top survivors at fresh random depths.
func (s *Simulation) reproduce(survivors []model.Creature) []model.Creature {
	n := s.cfg.PopulationSize
	next := make([]model.Creature, 0, n)

	for _, parent := range survivors {
		if len(next) >= n {
			break
		}
		base := math.Floor(parent.Traits.ReproRate)
		if base < 1 {
			base = 1
		}
		count := int(base * math.Min(2.0, parent.Fitness/2.0))
		for i := 0; i < count && len(next) < n; i++ {
			child := creature.Mutate(s.rng, parent, s.cfg.MutationRate)
			jitter := (s.rng.Float64()*2 - 1) * s.cfg.DepthJitter
			next = append(next, creature.AtDepth(child, parent.Depth+jitter))
		}
	}

	top := survivors
	if len(top) > s.cfg.EliteFallback {
		top = top[:s.cfg.EliteFallback]
	}
	for len(next) < n {
		parent := top[s.rng.Intn(len(top))]
		child := creature.Mutate(s.rng, parent, s.cfg.MutationRate)
		next = append(next, creature.AtDepth(child, s.rng.Float64()*ocean.MaxDepth))
	}

	return next[:n]
}

func (s *Simulation) summarize() model.GenerationStats {
	stats := model.GenerationStats{}
	total := 0.0
	for _, c := range s.creatures {
		total += c.Fitness
		if c.Fitness > stats.BestFitness {
			stats.BestFitness = c.Fitness
		}
		if c.Alive {
			stats.AliveCount++
		}
	}
	if len(s.creatures) > 0 {
		stats.MeanFitness = total / float64(len(s.creatures))
	}
	return stats
}

func (s *Simulation) logEntry() model.SpeciesLogEntry {
	species := aggregateSpecies(s.creatures)
	return model.SpeciesLogEntry{
		Generation:   s.generationCount,
		Species:      species,
		TotalSpecies: len(species),
	}
}

// SpeciesSummary aggregates the current living population by species name:
// count, mean fitness, and depth range per species.
func (s *Simulation) SpeciesSummary() map[string]model.SpeciesStats {
	return aggregateSpecies(s.creatures)
}

func aggregateSpecies(creatures []model.Creature) map[string]model.SpeciesStats {
	type acc struct {
		count      int
		sumFitness float64
		minDepth   float64
		maxDepth   float64
	}
	byName := map[string]*acc{}
	for _, c := range creatures {
		if !c.Alive {
			continue
		}
		bucket := byName[c.SpeciesName]
		if bucket == nil {
			bucket = &acc{minDepth: c.Depth, maxDepth: c.Depth}
			byName[c.SpeciesName] = bucket
		}
		bucket.count++
		bucket.sumFitness += c.Fitness
		if c.Depth < bucket.minDepth {
			bucket.minDepth = c.Depth
		}
		if c.Depth > bucket.maxDepth {
			bucket.maxDepth = c.Depth
		}
	}

	out := make(map[string]model.SpeciesStats, len(byName))
	for name, bucket := range byName {
		out[name] = model.SpeciesStats{
			Count:       bucket.count,
			MeanFitness: bucket.sumFitness / float64(bucket.count),
			MinDepth:    bucket.minDepth,
			MaxDepth:    bucket.maxDepth,
		}
	}
	return out
}

// PinDepth relocates every creature to one depth. Depth surveys use this to
// probe which trait mixes survive at a given depth.
func (s *Simulation) PinDepth(depth float64) {
	for i := range s.creatures {
		s.creatures[i] = creature.AtDepth(s.creatures[i], depth)
	}
}

// Creatures returns a copy of the current population in order.
func (s *Simulation) Creatures() []model.Creature {
	out := make([]model.Creature, len(s.creatures))
	copy(out, s.creatures)
	return out
}

// SpeciesLog returns the per-generation diversity log, oldest first.
func (s *Simulation) SpeciesLog() []model.SpeciesLogEntry {
	out := make([]model.SpeciesLogEntry, len(s.speciesLog))
	copy(out, s.speciesLog)
	return out
}

// GenerationStats returns per-generation fitness diagnostics, oldest first.
func (s *Simulation) GenerationStats() []model.GenerationStats {
	out := make([]model.GenerationStats, len(s.generationStats))
	copy(out, s.generationStats)
	return out
}

func (s *Simulation) GenerationCount() int {
	return s.generationCount
}

// Threshold reports the survival threshold in effect after defaulting.
func (s *Simulation) Threshold() float64 {
	return s.cfg.SurvivalThreshold
}

func sortByFitness(creatures []model.Creature) {
	sort.SliceStable(creatures, func(i, j int) bool {
		return creatures[i].Fitness > creatures[j].Fitness
	})
}
