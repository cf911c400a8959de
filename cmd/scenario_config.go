package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/callsim/callsim/sim"
)

// Define struct for YAML
type ScenarioFile struct {
	Scenarios []ScenarioEntry `yaml:"scenarios"`
}

type ScenarioEntry struct {
	Label       string  `yaml:"label"`
	Agents      int     `yaml:"agents"`
	ArrivalProb float64 `yaml:"arrival_prob"`
	ServiceMin  int     `yaml:"service_min"`
	ServiceMax  int     `yaml:"service_max"`
	Steps       int     `yaml:"steps"`
}

// LoadScenarios reads a YAML scenario file and builds validated configs, all
// sharing the given master seed. The file must declare at least one scenario.
func LoadScenarios(path string, seed int64) ([]sim.ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s declares no scenarios", path)
	}

	configs := make([]sim.ScenarioConfig, 0, len(file.Scenarios))
	for i, entry := range file.Scenarios {
		cfg := sim.ScenarioConfig{
			Label:          entry.Label,
			NumAgents:      entry.Agents,
			ArrivalProb:    entry.ArrivalProb,
			ServiceTimeMin: entry.ServiceMin,
			ServiceTimeMax: entry.ServiceMax,
			SimSteps:       entry.Steps,
			Seed:           seed,
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, entry.Label, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
