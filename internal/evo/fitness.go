package evo

import (
	"math"

	"pelagos/internal/creature"
	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

// Per-zone size bonuses. Deep water favors small bodies.
var sizeScores = map[ocean.Zone]map[string]float64{
	ocean.ZoneEuphotic: {
		creature.SizeMicroscopic: 0.8,
		creature.SizeSmall:       1.0,
		creature.SizeMedium:      1.2,
		creature.SizeLarge:       1.0,
		creature.SizeGiant:       0.6,
	},
	ocean.ZoneDysphotic: {
		creature.SizeMicroscopic: 0.6,
		creature.SizeSmall:       1.2,
		creature.SizeMedium:      1.5,
		creature.SizeLarge:       1.0,
		creature.SizeGiant:       0.4,
	},
	ocean.ZoneAphotic: {
		creature.SizeMicroscopic: 1.0,
		creature.SizeSmall:       1.3,
		creature.SizeMedium:      1.0,
		creature.SizeLarge:       0.7,
		creature.SizeGiant:       0.3,
	},
}

// Defense effectiveness above and below 1000m. Shallow water has more
// predators; deep water rewards passive defenses. Mechanisms missing from a
// table score 0 there.
var (
	shallowDefenseScores = map[string]float64{
		creature.DefenseSpeed:      1.2,
		creature.DefenseCamouflage: 1.0,
		creature.DefenseToxins:     1.1,
		creature.DefenseSpines:     0.8,
		creature.DefenseArmor:      0.6,
		creature.DefenseMimicry:    1.0,
		creature.DefenseNone:       -0.5,
	}
	deepDefenseScores = map[string]float64{
		creature.DefenseCamouflage: 0.8,
		creature.DefenseToxins:     1.0,
		creature.DefenseArmor:      1.0,
		creature.DefenseSpines:     0.7,
		creature.DefenseSpeed:      0.6,
		creature.DefenseNone:       0.0,
	}
)

// Social behavior above and below 1000m.
var (
	shallowSocialScores = map[string]float64{
		creature.SocialSchooling:   1.0,
		creature.SocialSmallGroups: 0.8,
		creature.SocialColonial:    0.6,
		creature.SocialSymbiotic:   0.7,
		creature.SocialSolitary:    0.3,
	}
	deepSocialScores = map[string]float64{
		creature.SocialSolitary:    1.0,
		creature.SocialSymbiotic:   1.2,
		creature.SocialSmallGroups: 0.4,
		creature.SocialSchooling:   0.2,
		creature.SocialColonial:    0.8,
	}
)

// EvaluateFitness scores c against its current-depth layer and writes the
// result to c.Fitness, clamped to a non-negative floor. Beyond the trait
// compatibility score it sums the size, defense, social, metabolic, and
// tolerance terms, each keyed by fixed lookup tables. Pure apart from the
// fitness write.
func EvaluateFitness(c *model.Creature) {
	layer := ocean.LayerAt(c.Depth)

	fit := creature.Score(*c, layer)
	fit += sizeScores[ocean.ZoneAt(c.Depth)][c.Traits.Size]
	fit += defenseTerm(c.Depth, c.Traits.DefenseMechanism)
	fit += socialTerm(c.Depth, c.Traits.SocialBehavior)
	fit += metabolicTerm(c.Depth, c.Traits)
	fit += toleranceTerm(c.Depth, c.Traits)

	if fit < 0 {
		fit = 0
	}
	c.Fitness = fit
}

func defenseTerm(depth float64, defense string) float64 {
	if depth < 1000 {
		return shallowDefenseScores[defense]
	}
	return deepDefenseScores[defense]
}

func socialTerm(depth float64, social string) float64 {
	if depth < 1000 {
		return shallowSocialScores[social]
	}
	return deepSocialScores[social]
}

// metabolicTerm favors slow metabolism and high oxygen efficiency in the deep
// sea; surface layers support a moderate metabolic band.
func metabolicTerm(depth float64, t model.Traits) float64 {
	if depth > 2000 {
		term := 0.0
		if t.MetabolicRate < 1.0 {
			term += 1.0
		}
		if t.OxygenEfficiency > 1.2 {
			term += 0.8
		}
		return term
	}
	if t.MetabolicRate >= 0.8 && t.MetabolicRate <= 1.5 {
		return 0.5
	}
	return 0
}

// toleranceTerm rewards depth-appropriate temperature tolerance and penalizes
// pressure tolerance proportionally to its distance from the depth-expected
// value.
func toleranceTerm(depth float64, t model.Traits) float64 {
	term := 0.0
	if depth > 3000 {
		if t.TemperatureTolerance == creature.TempCold || t.TemperatureTolerance == creature.TempExtremophile {
			term += 0.8
		}
	} else if depth < 500 {
		if t.TemperatureTolerance == creature.TempModerate || t.TemperatureTolerance == creature.TempWarm {
			term += 0.6
		}
	}

	expected := math.Min(2.0, depth/3000.0)
	term -= math.Abs(t.PressureTolerance-expected) * 0.5
	return term
}
