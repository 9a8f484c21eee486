package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"pelagos/internal/creature"
	"pelagos/internal/model"
)

// Survivor categories used by depth-band aggregation. Creatures without eyes
// split into plants and animals by food strategy.
const (
	CategoryEyes            = "eyes"
	CategoryBioluminescence = "bioluminescence"
	CategoryPlants          = "plants"
	CategoryNoEyesAnimal    = "no_eyes_animal"
	CategoryEcholocation    = "echolocation"
	CategoryLateralLine     = "lateral_line"
	CategoryCompoundEyes    = "compound_eyes"
)

// Categories returns the survivor categories in display order.
func Categories() []string {
	return []string{
		CategoryEyes, CategoryBioluminescence, CategoryPlants,
		CategoryNoEyesAnimal, CategoryEcholocation,
		CategoryLateralLine, CategoryCompoundEyes,
	}
}

// Categorize maps a creature to its survivor category. Unknown vision values
// pass through as their own category.
func Categorize(c model.Creature) string {
	switch c.Traits.Vision {
	case creature.VisionEyes:
		return CategoryEyes
	case creature.VisionBioluminescence:
		return CategoryBioluminescence
	case creature.VisionNoEyes:
		if c.Traits.FoodStrategy == creature.FoodPhotosynthesis {
			return CategoryPlants
		}
		return CategoryNoEyesAnimal
	case creature.VisionEcholocation:
		return CategoryEcholocation
	case creature.VisionLateralLine:
		return CategoryLateralLine
	case creature.VisionCompoundEyes:
		return CategoryCompoundEyes
	default:
		return c.Traits.Vision
	}
}

// DepthBands maps a rounded depth step to per-category creature counts.
type DepthBands map[int]map[string]float64

// AggregateByDepth buckets the living creatures by depth rounded to the
// nearest step and counts them per survivor category.
func AggregateByDepth(creatures []model.Creature, step int) DepthBands {
	bands := DepthBands{}
	for _, c := range creatures {
		if !c.Alive {
			continue
		}
		depthKey := int(math.Round(c.Depth/float64(step))) * step
		if bands[depthKey] == nil {
			bands[depthKey] = map[string]float64{}
		}
		bands[depthKey][Categorize(c)]++
	}
	return bands
}

// AverageBands averages aggregations from repeated runs at the given depth
// keys and categories. Missing cells count as zero.
func AverageBands(all []DepthBands, depths []int, categories []string) DepthBands {
	avg := DepthBands{}
	if len(all) == 0 {
		return avg
	}
	samples := make([]float64, len(all))
	for _, depth := range depths {
		avg[depth] = map[string]float64{}
		for _, category := range categories {
			for i, bands := range all {
				samples[i] = bands[depth][category]
			}
			avg[depth][category] = stat.Mean(samples, nil)
		}
	}
	return avg
}
