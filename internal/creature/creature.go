// Package creature owns the trait representation of an ocean creature:
// construction, species naming, mutation, and environment-compatibility
// scoring.
package creature

import (
	"math/rand"

	"github.com/google/uuid"

	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

// InitialFitness is the bookkeeping floor a creature starts at before its
// first evaluation.
const InitialFitness = 0.1

const initialEnergy = 100.0

// New builds a creature at depth with every trait drawn uniformly from its
// domain.
func New(rng *rand.Rand, depth float64) model.Creature {
	traits := model.Traits{
		Vision:               pick(rng, VisionOptions),
		FoodStrategy:         pick(rng, FoodStrategyOptions),
		BodyType:             pick(rng, BodyTypeOptions),
		Locomotion:           pick(rng, LocomotionOptions),
		Size:                 pick(rng, SizeOptions),
		PressureAdaptation:   pick(rng, PressureAdaptationOptions),
		TemperatureTolerance: pick(rng, TemperatureToleranceOptions),
		DefenseMechanism:     pick(rng, DefenseMechanismOptions),
		SocialBehavior:       pick(rng, SocialBehaviorOptions),

		MoveEff:           uniform(rng, RangeMoveEff),
		ReproRate:         uniform(rng, RangeReproRate),
		MetabolicRate:     uniform(rng, RangeMetabolicRate),
		OxygenEfficiency:  uniform(rng, RangeOxygenEfficiency),
		LightProduction:   uniform(rng, RangeLightProduction),
		PressureTolerance: uniform(rng, RangePressureTolerance),
		SalinityTolerance: uniform(rng, RangeSalinityTolerance),
		Aggression:        uniform(rng, RangeAggression),
		CamouflageAbility: uniform(rng, RangeCamouflageAbility),
		MigrationTendency: uniform(rng, RangeMigrationTendency),
	}
	return NewWithTraits(depth, traits)
}

// NewWithTraits builds a creature from caller-supplied traits, copied
// verbatim without validation. Depth is clamped to [0, ocean.MaxDepth].
func NewWithTraits(depth float64, traits model.Traits) model.Creature {
	depth = ocean.ClampDepth(depth)
	return model.Creature{
		ID:          uuid.NewString(),
		Traits:      traits,
		Depth:       depth,
		Alive:       true,
		Fitness:     InitialFitness,
		Energy:      initialEnergy,
		SpeciesName: SpeciesName(depth, traits.Vision),
	}
}

// AtDepth returns a copy of c relocated to depth, with its species name
// re-derived.
func AtDepth(c model.Creature, depth float64) model.Creature {
	c.Depth = ocean.ClampDepth(depth)
	c.SpeciesName = SpeciesName(c.Depth, c.Traits.Vision)
	return c
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func uniform(rng *rand.Rand, r Range) float64 {
	return r.Low + rng.Float64()*(r.High-r.Low)
}
