package creature

import "pelagos/internal/ocean"

var visionSuffixes = map[string]string{
	VisionEyes:            "opticus",
	VisionNoEyes:          "caecus",
	VisionBioluminescence: "lucidus",
	VisionEcholocation:    "sonarus",
	VisionLateralLine:     "lateralis",
	VisionCompoundEyes:    "multiopus",
}

// SpeciesName derives a binomial-style name from depth and vision alone.
// It is a pure function: identical inputs always yield identical names.
// Unknown vision values take the "mysticus" suffix.
func SpeciesName(depth float64, vision string) string {
	suffix, ok := visionSuffixes[vision]
	if !ok {
		suffix = "mysticus"
	}
	return ocean.NamePrefix(depth) + " " + suffix
}
