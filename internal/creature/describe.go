package creature

import (
	"fmt"

	"pelagos/internal/model"
)

var sizeDescriptions = map[string]string{
	SizeMicroscopic: "tiny",
	SizeSmall:       "small",
	SizeMedium:      "medium-sized",
	SizeLarge:       "large",
	SizeGiant:       "gigantic",
}

// Describe renders a human-readable sentence about a creature.
func Describe(c model.Creature) string {
	sizeDesc, ok := sizeDescriptions[c.Traits.Size]
	if !ok {
		sizeDesc = c.Traits.Size
	}
	return fmt.Sprintf(
		"%s is a %s %s creature that moves by %s. "+
			"It uses %s for navigation and feeds via %s. "+
			"It lives at depth around %d meters.",
		c.SpeciesName, sizeDesc, c.Traits.BodyType, c.Traits.Locomotion,
		c.Traits.Vision, c.Traits.FoodStrategy, int(c.Depth),
	)
}

// Summary is the one-line form used in population listings.
func Summary(c model.Creature) string {
	return fmt.Sprintf("%s (Depth: %dm, Fitness: %.2f)", c.SpeciesName, int(c.Depth), c.Fitness)
}
