// Package ocean models the depth-stratified environment as static lookups.
package ocean

// Food types supplied by the environment layers.
const (
	FoodPhotosynthesis = "photosynthesis"
	FoodOrganics       = "organics"
	FoodMarineSnow     = "marine snow"
	FoodChemosynthesis = "chemosynthesis"
)

// MaxDepth bounds every creature's depth in meters.
const MaxDepth = 6000.0

// Layer is one contiguous depth band: [MinDepth, MaxDepth).
type Layer struct {
	Name           string
	MinDepth       float64
	MaxDepth       float64
	LightIntensity float64
	FoodType       string
}

var layers = []Layer{
	{Name: "Surface", MinDepth: 0, MaxDepth: 100, LightIntensity: 1.0, FoodType: FoodPhotosynthesis},
	{Name: "Mid-depth", MinDepth: 100, MaxDepth: 1000, LightIntensity: 0.3, FoodType: FoodOrganics},
	{Name: "Deep Sea", MinDepth: 1000, MaxDepth: 4000, LightIntensity: 0.05, FoodType: FoodMarineSnow},
	{Name: "Abyss", MinDepth: 4000, MaxDepth: 6000, LightIntensity: 0.01, FoodType: FoodChemosynthesis},
}

// Layers returns the ordered depth bands.
func Layers() []Layer {
	out := make([]Layer, len(layers))
	copy(out, layers)
	return out
}

// LayerAt returns the band containing depth. Depths outside every band,
// negative or >= MaxDepth, resolve to the deepest band.
func LayerAt(depth float64) Layer {
	for _, layer := range layers {
		if layer.MinDepth <= depth && depth < layer.MaxDepth {
			return layer
		}
	}
	return layers[len(layers)-1]
}

// Zone classifies a depth by available light, for vision scoring.
type Zone int

const (
	ZoneEuphotic Zone = iota
	ZoneDysphotic
	ZoneAphotic
)

func ZoneAt(depth float64) Zone {
	switch {
	case depth < 200:
		return ZoneEuphotic
	case depth < 1000:
		return ZoneDysphotic
	default:
		return ZoneAphotic
	}
}

// Pressure tiers a creature can be adapted to, shallowest first.
const (
	PressureLow     = "low"
	PressureMedium  = "medium"
	PressureHigh    = "high"
	PressureExtreme = "extreme"
)

type band struct {
	minDepth   float64
	maxDepth   float64
	namePrefix string
	pressure   string
}

// The naming bands double as the pressure-requirement bands.
var bands = []band{
	{0, 200, "Superficie", PressureLow},
	{200, 1000, "Meso", PressureMedium},
	{1000, 4000, "Bathy", PressureHigh},
	{4000, 6000, "Abysso", PressureExtreme},
}

func bandAt(depth float64) (band, bool) {
	for _, b := range bands {
		if b.minDepth <= depth && depth < b.maxDepth {
			return b, true
		}
	}
	return band{}, false
}

// NamePrefix returns the genus-like prefix for a depth. Out-of-band depths,
// negative or >= MaxDepth, fall back to the deepest prefix.
func NamePrefix(depth float64) string {
	if b, ok := bandAt(depth); ok {
		return b.namePrefix
	}
	return "Abysso"
}

// RequiredPressure returns the pressure tier a depth demands. Out-of-band
// depths fall back to the extreme tier.
func RequiredPressure(depth float64) string {
	if b, ok := bandAt(depth); ok {
		return b.pressure
	}
	return PressureExtreme
}

// PressureTierIndex orders the pressure tiers for adjacency scoring.
// Unknown tiers return -1.
func PressureTierIndex(tier string) int {
	switch tier {
	case PressureLow:
		return 0
	case PressureMedium:
		return 1
	case PressureHigh:
		return 2
	case PressureExtreme:
		return 3
	default:
		return -1
	}
}

// ClampDepth confines a depth to [0, MaxDepth].
func ClampDepth(depth float64) float64 {
	if depth < 0 {
		return 0
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}
