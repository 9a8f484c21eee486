package creature

import (
	"pelagos/internal/model"
	"pelagos/internal/ocean"
)

// Per-zone vision scores. Unknown vision values score 0 in every zone.
var visionScores = map[ocean.Zone]map[string]float64{
	ocean.ZoneEuphotic: {
		VisionEyes:            2.0,
		VisionCompoundEyes:    1.8,
		VisionLateralLine:     0.5,
		VisionBioluminescence: -0.8,
		VisionEcholocation:    0.2,
		VisionNoEyes:          -1.0,
	},
	ocean.ZoneDysphotic: {
		VisionBioluminescence: 1.5,
		VisionEcholocation:    1.2,
		VisionLateralLine:     1.0,
		VisionEyes:            1.2,
		VisionCompoundEyes:    0.8,
		VisionNoEyes:          0.5,
	},
	ocean.ZoneAphotic: {
		VisionBioluminescence: 2.2,
		VisionEcholocation:    2.0,
		VisionLateralLine:     1.8,
		VisionNoEyes:          1.5,
		VisionEyes:            -1.5,
		VisionCompoundEyes:    -1.2,
	},
}

// Food-strategy bonus per layer food type.
var foodScores = map[string]map[string]float64{
	ocean.FoodPhotosynthesis: {
		FoodPhotosynthesis: 2.0,
		FoodHerbivore:      2.0,
	},
	ocean.FoodChemosynthesis: {
		FoodChemosynthesis: 1.8,
		FoodDetritivore:    1.8,
		FoodScavenger:      1.8,
	},
	ocean.FoodMarineSnow: {
		FoodFilter:      1.5,
		FoodDetritivore: 1.5,
		FoodScavenger:   1.5,
	},
	ocean.FoodOrganics: {
		FoodFilter:    1.0,
		FoodPredator:  1.0,
		FoodCarnivore: 1.0,
	},
}

// Body types that make a locomotion mode efficient.
var bodySynergies = map[string]map[string]bool{
	MoveSwimming:      {BodyStreamlined: true, BodyElongated: true},
	MoveFloating:      {BodyGelatinous: true, BodySpherical: true},
	MoveCrawling:      {BodyFlat: true, BodyArmored: true},
	MoveJetPropulsion: {BodySpherical: true, BodyStreamlined: true},
}

// Score sums four independent contributions of a creature's traits against an
// environment layer: vision vs light zone, pressure adaptation vs required
// tier, food strategy vs layer food type, and body/locomotion synergy. The
// result is always finite and may be negative.
func Score(c model.Creature, layer ocean.Layer) float64 {
	score := visionScores[ocean.ZoneAt(c.Depth)][c.Traits.Vision]
	score += pressureScore(c.Depth, c.Traits.PressureAdaptation)
	score += foodScores[layer.FoodType][c.Traits.FoodStrategy]
	if bodySynergies[c.Traits.Locomotion][c.Traits.BodyType] {
		score += 0.5
	}
	return score
}

// pressureScore rewards an exact match with the depth-required tier, tolerates
// an adjacent tier, and penalizes everything further off.
func pressureScore(depth float64, adaptation string) float64 {
	required := ocean.RequiredPressure(depth)
	if adaptation == required {
		return 1.5
	}
	idxRequired := ocean.PressureTierIndex(required)
	idxTrait := ocean.PressureTierIndex(adaptation)
	if idxTrait < 0 {
		return -1.0
	}
	diff := idxRequired - idxTrait
	if diff == 1 || diff == -1 {
		return 0.5
	}
	return -1.0
}
