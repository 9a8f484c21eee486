package evo

import (
	"math"
	"testing"

	"pelagos/internal/creature"
	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluateFitnessSurfaceSpecialist(t *testing.T) {
	c := creature.NewWithTraits(50, model.Traits{
		Vision:               creature.VisionEyes,
		FoodStrategy:         creature.FoodPhotosynthesis,
		BodyType:             creature.BodyStreamlined,
		Locomotion:           creature.MoveSwimming,
		Size:                 creature.SizeMedium,
		PressureAdaptation:   ocean.PressureLow,
		TemperatureTolerance: creature.TempWarm,
		DefenseMechanism:     creature.DefenseSpeed,
		SocialBehavior:       creature.SocialSchooling,
		MetabolicRate:        1.0,
		PressureTolerance:    50.0 / 3000.0,
	})
	EvaluateFitness(&c)
	// compat 6.0 + size 1.2 + defense 1.2 + social 1.0 + metabolic 0.5
	// + temperature 0.6 + pressure tolerance penalty 0
	if !almostEqual(c.Fitness, 10.5) {
		t.Fatalf("fitness = %v, want 10.5", c.Fitness)
	}
}

func TestEvaluateFitnessAbyssSpecialist(t *testing.T) {
	c := creature.NewWithTraits(5000, model.Traits{
		Vision:               creature.VisionBioluminescence,
		FoodStrategy:         creature.FoodChemosynthesis,
		BodyType:             creature.BodyElongated,
		Locomotion:           creature.MoveUndulating,
		Size:                 creature.SizeSmall,
		PressureAdaptation:   ocean.PressureExtreme,
		TemperatureTolerance: creature.TempCold,
		DefenseMechanism:     creature.DefenseToxins,
		SocialBehavior:       creature.SocialSymbiotic,
		MetabolicRate:        0.5,
		OxygenEfficiency:     1.5,
		PressureTolerance:    5000.0 / 3000.0,
	})
	EvaluateFitness(&c)
	// compat 5.5 + size 1.3 + defense 1.0 + social 1.2 + metabolic 1.8
	// + temperature 0.8 + pressure tolerance penalty 0
	if !almostEqual(c.Fitness, 11.6) {
		t.Fatalf("fitness = %v, want 11.6", c.Fitness)
	}
}

func TestEvaluateFitnessClampsNegative(t *testing.T) {
	c := creature.NewWithTraits(50, model.Traits{
		Vision:               creature.VisionNoEyes,
		FoodStrategy:         creature.FoodChemosynthesis,
		BodyType:             creature.BodyGelatinous,
		Locomotion:           creature.MoveSwimming,
		Size:                 "unknown",
		PressureAdaptation:   ocean.PressureExtreme,
		TemperatureTolerance: creature.TempCold,
		DefenseMechanism:     creature.DefenseNone,
		SocialBehavior:       "unknown",
		MetabolicRate:        2.0,
		PressureTolerance:    2.0,
	})
	EvaluateFitness(&c)
	if c.Fitness != 0 {
		t.Fatalf("fitness = %v, want 0 after clamping", c.Fitness)
	}
}

func TestMetabolicTermDeepVsShallow(t *testing.T) {
	deep := model.Traits{MetabolicRate: 0.5, OxygenEfficiency: 1.5}
	if got := metabolicTerm(3000, deep); !almostEqual(got, 1.8) {
		t.Fatalf("deep metabolic term = %v, want 1.8", got)
	}
	if got := metabolicTerm(3000, model.Traits{MetabolicRate: 1.5, OxygenEfficiency: 1.0}); got != 0 {
		t.Fatalf("deep fast metabolism term = %v, want 0", got)
	}
	if got := metabolicTerm(100, model.Traits{MetabolicRate: 1.0}); !almostEqual(got, 0.5) {
		t.Fatalf("shallow moderate metabolism term = %v, want 0.5", got)
	}
	if got := metabolicTerm(100, model.Traits{MetabolicRate: 1.9}); got != 0 {
		t.Fatalf("shallow fast metabolism term = %v, want 0", got)
	}
}

func TestToleranceTermPressurePenalty(t *testing.T) {
	// At 6000m the expected tolerance saturates at 2.0.
	tr := model.Traits{TemperatureTolerance: creature.TempCold, PressureTolerance: 2.0}
	if got := toleranceTerm(6000, tr); !almostEqual(got, 0.8) {
		t.Fatalf("tolerance term = %v, want 0.8", got)
	}
	tr.PressureTolerance = 1.0
	if got := toleranceTerm(6000, tr); !almostEqual(got, 0.3) {
		t.Fatalf("tolerance term = %v, want 0.3", got)
	}
	// Mid depths give no temperature bonus.
	mid := model.Traits{TemperatureTolerance: creature.TempModerate, PressureTolerance: 0.5}
	if got := toleranceTerm(1500, mid); !almostEqual(got, 0) {
		t.Fatalf("tolerance term = %v, want 0", got)
	}
}
