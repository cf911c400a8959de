package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel for every scenario validation failure.
// Callers can match it with errors.Is regardless of which field was bad.
var ErrInvalidConfig = errors.New("invalid scenario configuration")

// ScenarioConfig describes one call center scenario. It is immutable input:
// built once by the driver, validated before stepping, never mutated by a run.
type ScenarioConfig struct {
	Label          string  // scenario identifier, e.g. "3_agents"
	NumAgents      int     // number of serving agents (must be > 0)
	ArrivalProb    float64 // probability of one call arriving per step, in [0,1]
	ServiceTimeMin int     // minimum call duration in steps (must be > 0)
	ServiceTimeMax int     // maximum call duration in steps (must be >= ServiceTimeMin)
	SimSteps       int     // total steps to simulate (must be > 0)
	Seed           int64   // master seed for the run's PartitionedRNG
}

// Validate checks every field constraint and reports the first violation,
// wrapped around ErrInvalidConfig. A config that passes Validate cannot make
// the step loop fail.
func (c ScenarioConfig) Validate() error {
	if c.NumAgents <= 0 {
		return fmt.Errorf("%w: numAgents must be positive, got %d", ErrInvalidConfig, c.NumAgents)
	}
	if c.SimSteps <= 0 {
		return fmt.Errorf("%w: simSteps must be positive, got %d", ErrInvalidConfig, c.SimSteps)
	}
	if c.ArrivalProb < 0 || c.ArrivalProb > 1 {
		return fmt.Errorf("%w: arrivalProb must be in [0,1], got %v", ErrInvalidConfig, c.ArrivalProb)
	}
	if c.ServiceTimeMin <= 0 {
		return fmt.Errorf("%w: serviceTimeMin must be positive, got %d", ErrInvalidConfig, c.ServiceTimeMin)
	}
	if c.ServiceTimeMax < c.ServiceTimeMin {
		return fmt.Errorf("%w: serviceTimeMax %d is below serviceTimeMin %d", ErrInvalidConfig, c.ServiceTimeMax, c.ServiceTimeMin)
	}
	return nil
}

// WithSeed returns a copy of the config with a different master seed.
// Used by the experiment driver to derive independent replication trials.
func (c ScenarioConfig) WithSeed(seed int64) ScenarioConfig {
	c.Seed = seed
	return c
}
