package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ScenarioConfig {
	return ScenarioConfig{
		Label:          "3_agents",
		NumAgents:      3,
		ArrivalProb:    0.5,
		ServiceTimeMin: 3,
		ServiceTimeMax: 7,
		SimSteps:       2000,
		Seed:           42,
	}
}

func TestScenarioConfig_Validate_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestScenarioConfig_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScenarioConfig)
	}{
		{"zero agents", func(c *ScenarioConfig) { c.NumAgents = 0 }},
		{"negative agents", func(c *ScenarioConfig) { c.NumAgents = -2 }},
		{"zero steps", func(c *ScenarioConfig) { c.SimSteps = 0 }},
		{"negative steps", func(c *ScenarioConfig) { c.SimSteps = -1 }},
		{"arrival prob below range", func(c *ScenarioConfig) { c.ArrivalProb = -0.1 }},
		{"arrival prob above range", func(c *ScenarioConfig) { c.ArrivalProb = 1.1 }},
		{"zero service min", func(c *ScenarioConfig) { c.ServiceTimeMin = 0 }},
		{"service max below min", func(c *ScenarioConfig) { c.ServiceTimeMin = 5; c.ServiceTimeMax = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error should wrap ErrInvalidConfig, got %v", err)
		})
	}
}

func TestScenarioConfig_Validate_BoundaryProbabilities(t *testing.T) {
	// GIVEN arrival probabilities at both ends of [0,1]
	for _, p := range []float64{0, 1} {
		cfg := validConfig()
		cfg.ArrivalProb = p

		// THEN both are valid steady states, not errors
		assert.NoError(t, cfg.Validate(), "arrivalProb=%v", p)
	}
}

func TestScenarioConfig_WithSeed_DoesNotMutateOriginal(t *testing.T) {
	// GIVEN a config with seed 42
	cfg := validConfig()

	// WHEN a derived config is created
	derived := cfg.WithSeed(100)

	// THEN only the copy carries the new seed
	if derived.Seed != 100 {
		t.Errorf("derived seed: got %d, want 100", derived.Seed)
	}
	if cfg.Seed != 42 {
		t.Errorf("original seed mutated: got %d, want 42", cfg.Seed)
	}
}
