package creature

import (
	"math/rand"

	"pelagos/internal/model"
)

// DefaultMutationRate is the per-trait mutation probability when the caller
// does not supply one.
const DefaultMutationRate = 0.15

// Mutate produces a brand-new creature from parent. Each categorical trait is
// independently re-drawn from its domain with probability rate (possibly
// re-selecting the same value); each continuous trait is independently
// perturbed by a uniform delta within its strength and clamped to its range.
// The offspring keeps the parent's depth, gets a fresh ID and a freshly
// derived species name, and never fails. A rate of 0 copies every trait
// unchanged while still yielding a distinct identity.
func Mutate(rng *rand.Rand, parent model.Creature, rate float64) model.Creature {
	t := parent.Traits

	t.Vision = mutateChoice(rng, rate, t.Vision, VisionOptions)
	t.FoodStrategy = mutateChoice(rng, rate, t.FoodStrategy, FoodStrategyOptions)
	t.BodyType = mutateChoice(rng, rate, t.BodyType, BodyTypeOptions)
	t.Locomotion = mutateChoice(rng, rate, t.Locomotion, LocomotionOptions)
	t.Size = mutateChoice(rng, rate, t.Size, SizeOptions)
	t.PressureAdaptation = mutateChoice(rng, rate, t.PressureAdaptation, PressureAdaptationOptions)
	t.TemperatureTolerance = mutateChoice(rng, rate, t.TemperatureTolerance, TemperatureToleranceOptions)
	t.DefenseMechanism = mutateChoice(rng, rate, t.DefenseMechanism, DefenseMechanismOptions)
	t.SocialBehavior = mutateChoice(rng, rate, t.SocialBehavior, SocialBehaviorOptions)

	t.MoveEff = mutateValue(rng, rate, t.MoveEff, RangeMoveEff)
	t.ReproRate = mutateValue(rng, rate, t.ReproRate, RangeReproRate)
	t.MetabolicRate = mutateValue(rng, rate, t.MetabolicRate, RangeMetabolicRate)
	t.OxygenEfficiency = mutateValue(rng, rate, t.OxygenEfficiency, RangeOxygenEfficiency)
	t.LightProduction = mutateValue(rng, rate, t.LightProduction, RangeLightProduction)
	t.PressureTolerance = mutateValue(rng, rate, t.PressureTolerance, RangePressureTolerance)
	t.SalinityTolerance = mutateValue(rng, rate, t.SalinityTolerance, RangeSalinityTolerance)
	t.Aggression = mutateValue(rng, rate, t.Aggression, RangeAggression)
	t.CamouflageAbility = mutateValue(rng, rate, t.CamouflageAbility, RangeCamouflageAbility)
	t.MigrationTendency = mutateValue(rng, rate, t.MigrationTendency, RangeMigrationTendency)

	return NewWithTraits(parent.Depth, t)
}

func mutateChoice(rng *rand.Rand, rate float64, current string, options []string) string {
	if rng.Float64() < rate {
		return options[rng.Intn(len(options))]
	}
	return current
}

func mutateValue(rng *rand.Rand, rate float64, current float64, r Range) float64 {
	if rng.Float64() < rate {
		current += (rng.Float64()*2 - 1) * r.Strength
	}
	if current < r.Low {
		return r.Low
	}
	if current > r.High {
		return r.High
	}
	return current
}
