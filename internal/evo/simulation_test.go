package evo

import (
	"context"
	"testing"

	"pelagos/internal/creature"
	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{PopulationSize: 0, Generations: 5}); err == nil {
		t.Fatalf("expected error for zero population")
	}
	if _, err := New(Config{PopulationSize: 10, Generations: 0}); err == nil {
		t.Fatalf("expected error for zero generations")
	}
	if _, err := New(Config{PopulationSize: 10, Generations: 5, MutationRate: 1.5}); err == nil {
		t.Fatalf("expected error for mutation rate > 1")
	}
}

// fitCreature clears the survival threshold comfortably at 50m.
func fitCreature() model.Creature {
	return creature.NewWithTraits(50, model.Traits{
		Vision:               creature.VisionEyes,
		FoodStrategy:         creature.FoodPhotosynthesis,
		BodyType:             creature.BodyStreamlined,
		Locomotion:           creature.MoveSwimming,
		Size:                 creature.SizeMedium,
		PressureAdaptation:   ocean.PressureLow,
		TemperatureTolerance: creature.TempWarm,
		DefenseMechanism:     creature.DefenseSpeed,
		SocialBehavior:       creature.SocialSchooling,

		// Continuous traits sit inside their ranges so rate-0 offspring
		// are not nudged by clamping.
		MoveEff:           1.0,
		ReproRate:         1.0,
		MetabolicRate:     1.0,
		OxygenEfficiency:  1.0,
		LightProduction:   0.5,
		PressureTolerance: 0.5,
		SalinityTolerance: 1.0,
		Aggression:        0.5,
		CamouflageAbility: 0.5,
		MigrationTendency: 0.5,
	})
}

func TestNegativeMutationRateDisablesMutation(t *testing.T) {
	const n = 4
	initial := make([]model.Creature, n)
	for i := range initial {
		initial[i] = fitCreature()
	}
	want := initial[0].Traits

	sim, err := NewWithPopulation(Config{PopulationSize: n, Generations: 1, Seed: 8, MutationRate: -1}, initial)
	if err != nil {
		t.Fatalf("NewWithPopulation: %v", err)
	}
	sim.RunGeneration()
	for i, c := range sim.Creatures() {
		if c.Traits != want {
			t.Fatalf("creature %d traits drifted with mutation disabled:\nwant %+v\ngot  %+v",
				i, want, c.Traits)
		}
	}
}

func TestNegativeThresholdDisablesCull(t *testing.T) {
	const n = 8
	initial := make([]model.Creature, n)
	for i := range initial {
		initial[i] = hostileCreature(50)
	}
	sim, err := NewWithPopulation(Config{PopulationSize: n, Generations: 1, Seed: 8, SurvivalThreshold: -1}, initial)
	if err != nil {
		t.Fatalf("NewWithPopulation: %v", err)
	}
	if sim.Threshold() != 0 {
		t.Fatalf("threshold = %v, want 0", sim.Threshold())
	}

	sim.evaluate()
	for i, c := range sim.Creatures() {
		if !c.Alive {
			t.Fatalf("creature %d culled with the threshold disabled (fitness %v)", i, c.Fitness)
		}
	}
}

func TestNewWithPopulationSizeMismatch(t *testing.T) {
	if _, err := NewWithPopulation(Config{PopulationSize: 3, Generations: 1}, nil); err == nil {
		t.Fatalf("expected error for mismatched initial population")
	}
}

func TestRunGenerationKeepsPopulationSize(t *testing.T) {
	sim, err := New(Config{PopulationSize: 40, Generations: 5, Seed: 17})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for gen := 0; gen < 5; gen++ {
		sim.RunGeneration()
		if got := len(sim.Creatures()); got != 40 {
			t.Fatalf("generation %d: population = %d, want 40", gen+1, got)
		}
	}
	if sim.GenerationCount() != 5 {
		t.Fatalf("generation count = %d, want 5", sim.GenerationCount())
	}
}

func TestRunRecordsLogsAndStats(t *testing.T) {
	sim, err := New(Config{PopulationSize: 10, Generations: 1, Seed: 99})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	calls := 0
	if err := sim.Run(context.Background(), func() { calls++ }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 1 {
		t.Fatalf("progress calls = %d, want 1", calls)
	}

	log := sim.SpeciesLog()
	if len(log) != 1 {
		t.Fatalf("species log entries = %d, want 1", len(log))
	}
	if log[0].Generation != 1 {
		t.Fatalf("log generation = %d, want 1", log[0].Generation)
	}
	if log[0].TotalSpecies < 1 || log[0].TotalSpecies > 10 {
		t.Fatalf("total species = %d, want within [1, 10]", log[0].TotalSpecies)
	}
	if log[0].TotalSpecies != len(log[0].Species) {
		t.Fatalf("total species %d does not match map size %d",
			log[0].TotalSpecies, len(log[0].Species))
	}

	stats := sim.GenerationStats()
	if len(stats) != 1 {
		t.Fatalf("generation stats entries = %d, want 1", len(stats))
	}
	if stats[0].Generation != 1 {
		t.Fatalf("stats generation = %d, want 1", stats[0].Generation)
	}
	if stats[0].BestFitness < stats[0].MeanFitness {
		t.Fatalf("best %v below mean %v", stats[0].BestFitness, stats[0].MeanFitness)
	}
	if stats[0].SpeciesCount != log[0].TotalSpecies {
		t.Fatalf("stats species count %d does not match log %d",
			stats[0].SpeciesCount, log[0].TotalSpecies)
	}
}

func TestRunHonorsContext(t *testing.T) {
	sim, err := New(Config{PopulationSize: 10, Generations: 100, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sim.Run(ctx, nil); err == nil {
		t.Fatalf("expected context error")
	}
	if sim.GenerationCount() != 0 {
		t.Fatalf("ran %d generations after cancellation", sim.GenerationCount())
	}
}

// hostileCreature scores near zero everywhere so the whole population fails
// the survival threshold.
func hostileCreature(depth float64) model.Creature {
	return creature.NewWithTraits(depth, model.Traits{
		Vision:               creature.VisionNoEyes,
		FoodStrategy:         creature.FoodParasite,
		BodyType:             creature.BodyGelatinous,
		Locomotion:           creature.MoveSwimming,
		Size:                 creature.SizeGiant,
		PressureAdaptation:   ocean.PressureExtreme,
		TemperatureTolerance: creature.TempCold,
		DefenseMechanism:     creature.DefenseNone,
		SocialBehavior:       creature.SocialSolitary,
		MetabolicRate:        2.0,
		PressureTolerance:    2.0,
	})
}

func TestExtinctionGuard(t *testing.T) {
	const n = 12
	initial := make([]model.Creature, n)
	for i := range initial {
		initial[i] = hostileCreature(50)
	}
	sim, err := NewWithPopulation(Config{PopulationSize: n, Generations: 1, Seed: 5}, initial)
	if err != nil {
		t.Fatalf("NewWithPopulation: %v", err)
	}

	sim.evaluate()
	alive := 0
	for _, c := range sim.Creatures() {
		if c.Alive {
			alive++
		}
	}
	if alive != 0 {
		t.Fatalf("hostile population has %d survivors before the guard", alive)
	}

	survivors := sim.selectSurvivors()
	if len(survivors) != 5 {
		t.Fatalf("guard kept %d creatures, want 5", len(survivors))
	}
	for _, c := range survivors {
		if !c.Alive {
			t.Fatalf("guarded survivor not marked alive")
		}
	}

	sim.creatures = sim.reproduce(survivors)
	if got := len(sim.Creatures()); got != n {
		t.Fatalf("population after guard reproduction = %d, want %d", got, n)
	}
}

func TestSelectSurvivorsSortedByFitness(t *testing.T) {
	sim, err := New(Config{PopulationSize: 30, Generations: 1, Seed: 77})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.evaluate()
	survivors := sim.selectSurvivors()
	for i := 1; i < len(survivors); i++ {
		if survivors[i].Fitness > survivors[i-1].Fitness {
			t.Fatalf("survivors not sorted: %v before %v",
				survivors[i-1].Fitness, survivors[i].Fitness)
		}
	}
}

func TestPinDepth(t *testing.T) {
	sim, err := New(Config{PopulationSize: 10, Generations: 1, Seed: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.PinDepth(2500)
	for _, c := range sim.Creatures() {
		if c.Depth != 2500 {
			t.Fatalf("depth = %v, want 2500", c.Depth)
		}
		if want := creature.SpeciesName(2500, c.Traits.Vision); c.SpeciesName != want {
			t.Fatalf("species name = %q, want %q", c.SpeciesName, want)
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() []model.Creature {
		sim, err := New(Config{PopulationSize: 20, Generations: 3, Seed: 123})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := sim.Run(context.Background(), nil); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return sim.Creatures()
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("population sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Traits != b[i].Traits || a[i].Depth != b[i].Depth {
			t.Fatalf("creature %d diverged between identical seeds", i)
		}
	}
}

func TestSpeciesSummaryDepthRange(t *testing.T) {
	initial := []model.Creature{
		creature.NewWithTraits(100, model.Traits{Vision: creature.VisionEyes}),
		creature.NewWithTraits(150, model.Traits{Vision: creature.VisionEyes}),
		creature.NewWithTraits(5000, model.Traits{Vision: creature.VisionNoEyes}),
	}
	initial[0].Fitness = 2.0
	initial[1].Fitness = 4.0
	initial[2].Fitness = 1.0

	sim, err := NewWithPopulation(Config{PopulationSize: 3, Generations: 1, Seed: 1}, initial)
	if err != nil {
		t.Fatalf("NewWithPopulation: %v", err)
	}
	summary := sim.SpeciesSummary()
	if len(summary) != 2 {
		t.Fatalf("species = %d, want 2", len(summary))
	}
	s, ok := summary["Superficie opticus"]
	if !ok {
		t.Fatalf("missing Superficie opticus in %v", summary)
	}
	if s.Count != 2 || s.MinDepth != 100 || s.MaxDepth != 150 {
		t.Fatalf("stats = %+v, want count 2 depth [100, 150]", s)
	}
	if got := s.MeanFitness; got != 3.0 {
		t.Fatalf("mean fitness = %v, want 3.0", got)
	}
}
