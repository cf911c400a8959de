package cmd

import (
	"fmt"

	sim "github.com/callsim/callsim/sim"
)

// Canonical comparison parameters: same call load for every scenario, only
// the number of agents varies.
const (
	defaultArrivalProb = 0.5
	defaultServiceMin  = 3
	defaultServiceMax  = 7
	defaultSimSteps    = 2000
)

// DefaultScenarios returns the built-in comparison set: 3, 4, and 5 agents
// under identical load, all runs driven by the same master seed.
func DefaultScenarios(seed int64) []sim.ScenarioConfig {
	configs := make([]sim.ScenarioConfig, 0, 3)
	for _, agents := range []int{3, 4, 5} {
		configs = append(configs, sim.ScenarioConfig{
			Label:          fmt.Sprintf("%d_agents", agents),
			NumAgents:      agents,
			ArrivalProb:    defaultArrivalProb,
			ServiceTimeMin: defaultServiceMin,
			ServiceTimeMax: defaultServiceMax,
			SimSteps:       defaultSimSteps,
			Seed:           seed,
		})
	}
	return configs
}
