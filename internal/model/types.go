package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Traits is a creature's full genome. The schema is fixed: every field is
// present on every creature and survives every mutation.
type Traits struct {
	Vision               string `json:"vision"`
	FoodStrategy         string `json:"food_strategy"`
	BodyType             string `json:"body_type"`
	Locomotion           string `json:"locomotion"`
	Size                 string `json:"size"`
	PressureAdaptation   string `json:"pressure_adaptation"`
	TemperatureTolerance string `json:"temperature_tolerance"`
	DefenseMechanism     string `json:"defense_mechanism"`
	SocialBehavior       string `json:"social_behavior"`

	MoveEff           float64 `json:"move_eff"`
	ReproRate         float64 `json:"repro_rate"`
	MetabolicRate     float64 `json:"metabolic_rate"`
	OxygenEfficiency  float64 `json:"oxygen_efficiency"`
	LightProduction   float64 `json:"light_production"`
	PressureTolerance float64 `json:"pressure_tolerance"`
	SalinityTolerance float64 `json:"salinity_tolerance"`
	Aggression        float64 `json:"aggression"`
	CamouflageAbility float64 `json:"camouflage_ability"`
	MigrationTendency float64 `json:"migration_tendency"`
}

type Creature struct {
	VersionedRecord
	ID          string  `json:"id"`
	Traits      Traits  `json:"traits"`
	Depth       float64 `json:"depth"`
	Alive       bool    `json:"alive"`
	Fitness     float64 `json:"fitness"`
	Age         int     `json:"age"`
	Energy      float64 `json:"energy"`
	SpeciesName string  `json:"species_name"`
}

// SpeciesStats aggregates the living members of one species within a
// single generation.
type SpeciesStats struct {
	Count       int     `json:"count"`
	MeanFitness float64 `json:"mean_fitness"`
	MinDepth    float64 `json:"min_depth"`
	MaxDepth    float64 `json:"max_depth"`
}

// SpeciesLogEntry is one per-generation snapshot of species diversity.
// Entries are append-only and never mutated after creation.
type SpeciesLogEntry struct {
	Generation   int                     `json:"generation"`
	Species      map[string]SpeciesStats `json:"species"`
	TotalSpecies int                     `json:"total_species"`
}

type GenerationStats struct {
	Generation   int     `json:"generation"`
	BestFitness  float64 `json:"best_fitness"`
	MeanFitness  float64 `json:"mean_fitness"`
	AliveCount   int     `json:"alive_count"`
	SpeciesCount int     `json:"species_count"`
}

type Population struct {
	VersionedRecord
	ID         string     `json:"id"`
	Generation int        `json:"generation"`
	Creatures  []Creature `json:"creatures"`
}

type RunRecord struct {
	VersionedRecord
	RunID          string  `json:"run_id"`
	CreatedAtUTC   string  `json:"created_at_utc"`
	Seed           int64   `json:"seed"`
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	TotalSpecies   int     `json:"total_species"`
	BestFitness    float64 `json:"best_fitness"`
}
