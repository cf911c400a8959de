package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/callsim/callsim/sim"
)

const sampleScenarios = `
scenarios:
  - label: 3_agents
    agents: 3
    arrival_prob: 0.5
    service_min: 3
    service_max: 7
    steps: 2000
  - label: 5_agents
    agents: 5
    arrival_prob: 0.5
    service_min: 3
    service_max: 7
    steps: 2000
`

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarios_ParsesAllEntries(t *testing.T) {
	path := writeScenarioFile(t, sampleScenarios)

	configs, err := LoadScenarios(path, 7)

	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "3_agents", configs[0].Label)
	assert.Equal(t, 3, configs[0].NumAgents)
	assert.Equal(t, 0.5, configs[0].ArrivalProb)
	assert.Equal(t, 3, configs[0].ServiceTimeMin)
	assert.Equal(t, 7, configs[0].ServiceTimeMax)
	assert.Equal(t, 2000, configs[0].SimSteps)
	assert.Equal(t, 5, configs[1].NumAgents)

	// Every loaded scenario carries the master seed
	for _, cfg := range configs {
		assert.Equal(t, int64(7), cfg.Seed)
	}
}

func TestLoadScenarios_MissingFile(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.yaml"), 42)
	require.Error(t, err)
}

func TestLoadScenarios_EmptyFile(t *testing.T) {
	path := writeScenarioFile(t, "scenarios: []\n")

	_, err := LoadScenarios(path, 42)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no scenarios")
}

func TestLoadScenarios_InvalidEntryRejected(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  - label: broken
    agents: 0
    arrival_prob: 0.5
    service_min: 3
    service_max: 7
    steps: 2000
`)

	_, err := LoadScenarios(path, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestLoadScenarios_MalformedYAML(t *testing.T) {
	path := writeScenarioFile(t, "scenarios: [not: valid")

	_, err := LoadScenarios(path, 42)

	require.Error(t, err)
}
