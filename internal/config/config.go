// Package config provides configuration loading for simulation runs.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters. Values missing from a loaded file keep
// the embedded defaults.
type Config struct {
	Run    RunConfig    `yaml:"run"`
	Survey SurveyConfig `yaml:"survey"`
	Output OutputConfig `yaml:"output"`
}

// RunConfig parameterizes a single simulation run.
type RunConfig struct {
	Population        int     `yaml:"population"`
	Generations       int     `yaml:"generations"`
	Seed              int64   `yaml:"seed"` // 0 means derive from wall clock
	MutationRate      float64 `yaml:"mutation_rate"`
	SurvivalThreshold float64 `yaml:"survival_threshold"`
	MinSurvivors      int     `yaml:"min_survivors"`
	EliteFallback     int     `yaml:"elite_fallback"`
	DepthJitter       float64 `yaml:"depth_jitter"`
}

// SurveyConfig parameterizes the depth survey.
type SurveyConfig struct {
	Runs        int `yaml:"runs"`
	Population  int `yaml:"population"`
	Generations int `yaml:"generations"`
	Step        int `yaml:"step"`
}

// OutputConfig selects where artifacts and archives go.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Store  string `yaml:"store"`
	DBPath string `yaml:"db_path"`
}

// Default returns the embedded default configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path loads the defaults alone.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
