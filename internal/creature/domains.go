package creature

import "pelagos/internal/ocean"

// Categorical trait values. Each domain is a closed set; random construction
// and mutation draw uniformly from these slices.
const (
	VisionEyes            = "eyes"
	VisionNoEyes          = "no_eyes"
	VisionBioluminescence = "bioluminescence"
	VisionEcholocation    = "echolocation"
	VisionLateralLine     = "lateral_line"
	VisionCompoundEyes    = "compound_eyes"

	FoodPhotosynthesis = "photosynthesis"
	FoodFilter         = "filter"
	FoodPredator       = "predator"
	FoodScavenger      = "scavenger"
	FoodParasite       = "parasite"
	FoodChemosynthesis = "chemosynthesis"
	FoodDetritivore    = "detritivore"
	FoodCarnivore      = "carnivore"
	FoodHerbivore      = "herbivore"
	FoodOmnivore       = "omnivore"

	BodyStreamlined = "streamlined"
	BodyFlat        = "flat"
	BodySpherical   = "spherical"
	BodyElongated   = "elongated"
	BodyGelatinous  = "gelatinous"
	BodyArmored     = "armored"

	MoveSwimming      = "swimming"
	MoveCrawling      = "crawling"
	MoveFloating      = "floating"
	MoveJetPropulsion = "jet_propulsion"
	MoveUndulating    = "undulating"
	MoveSessile       = "sessile"

	SizeMicroscopic = "microscopic"
	SizeSmall       = "small"
	SizeMedium      = "medium"
	SizeLarge       = "large"
	SizeGiant       = "giant"

	TempCold         = "cold"
	TempModerate     = "moderate"
	TempWarm         = "warm"
	TempExtremophile = "extremophile"

	DefenseCamouflage = "camouflage"
	DefenseSpines     = "spines"
	DefenseToxins     = "toxins"
	DefenseSpeed      = "speed"
	DefenseArmor      = "armor"
	DefenseMimicry    = "mimicry"
	DefenseNone       = "none"

	SocialSolitary    = "solitary"
	SocialSmallGroups = "small_groups"
	SocialSchooling   = "schooling"
	SocialColonial    = "colonial"
	SocialSymbiotic   = "symbiotic"
)

var (
	VisionOptions = []string{
		VisionEyes, VisionNoEyes, VisionBioluminescence,
		VisionEcholocation, VisionLateralLine, VisionCompoundEyes,
	}
	FoodStrategyOptions = []string{
		FoodPhotosynthesis, FoodFilter, FoodPredator, FoodScavenger,
		FoodParasite, FoodChemosynthesis, FoodDetritivore, FoodCarnivore,
		FoodHerbivore, FoodOmnivore,
	}
	BodyTypeOptions = []string{
		BodyStreamlined, BodyFlat, BodySpherical,
		BodyElongated, BodyGelatinous, BodyArmored,
	}
	LocomotionOptions = []string{
		MoveSwimming, MoveCrawling, MoveFloating,
		MoveJetPropulsion, MoveUndulating, MoveSessile,
	}
	SizeOptions = []string{
		SizeMicroscopic, SizeSmall, SizeMedium, SizeLarge, SizeGiant,
	}
	PressureAdaptationOptions = []string{
		ocean.PressureLow, ocean.PressureMedium,
		ocean.PressureHigh, ocean.PressureExtreme,
	}
	TemperatureToleranceOptions = []string{
		TempCold, TempModerate, TempWarm, TempExtremophile,
	}
	DefenseMechanismOptions = []string{
		DefenseCamouflage, DefenseSpines, DefenseToxins, DefenseSpeed,
		DefenseArmor, DefenseMimicry, DefenseNone,
	}
	SocialBehaviorOptions = []string{
		SocialSolitary, SocialSmallGroups, SocialSchooling,
		SocialColonial, SocialSymbiotic,
	}
)

// Range bounds a continuous trait and sets its mutation step size. Values are
// clamped to [Low, High] after every perturbation.
type Range struct {
	Low      float64
	High     float64
	Strength float64
}

var (
	RangeMoveEff           = Range{0.3, 2.0, 0.15}
	RangeReproRate         = Range{0.2, 2.5, 0.2}
	RangeMetabolicRate     = Range{0.2, 2.0, 0.1}
	RangeOxygenEfficiency  = Range{0.3, 1.8, 0.1}
	RangeLightProduction   = Range{0.0, 1.0, 0.1}
	RangePressureTolerance = Range{0.1, 2.0, 0.15}
	RangeSalinityTolerance = Range{0.3, 1.5, 0.1}
	RangeAggression        = Range{0.0, 1.0, 0.1}
	RangeCamouflageAbility = Range{0.0, 1.0, 0.1}
	RangeMigrationTendency = Range{0.0, 1.0, 0.1}
)
