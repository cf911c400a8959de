// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, system state, and
// the step loop for one scenario run. It advances in fixed 1-step increments
// over a finite horizon; there is no event heap because every step does the
// same four phases in a mandated order:
//
//  1. advance every busy agent (agents reaching 0 are idle as of this step)
//  2. admit at most one arrival with probability Config.ArrivalProb
//  3. assign waiting calls FIFO to idle agents, lowest index first
//  4. record queue length and busy-agent count
//
// Advancing before assignment lets an agent that just finished a call pick up
// an already-waiting call within the same time unit.
type Simulator struct {
	Config ScenarioConfig
	Clock  int // current step, 0-based
	// Queue holds arrival steps of calls waiting for an agent
	Queue *CallQueue
	// Agents holds remaining service time per agent (0 = idle)
	Agents *AgentPool
	// Result accumulates per-step observations; finalized by Run
	Result *RunResult

	rng *PartitionedRNG
}

// NewSimulator validates the config and builds a ready-to-run simulator.
// Returns an ErrInvalidConfig-wrapped error for a bad config; no partial
// state is produced in that case.
func NewSimulator(config ScenarioConfig) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		Config: config,
		Clock:  0,
		Queue:  &CallQueue{},
		Agents: NewAgentPool(config.NumAgents),
		Result: NewRunResult(config.Label, config.Seed),
		rng:    NewPartitionedRNG(NewSimulationKey(config.Seed)),
	}, nil
}

// Run executes the full step loop and returns the finalized result. The run
// is deterministic given the config: all randomness comes from the
// PartitionedRNG derived from Config.Seed.
func (s *Simulator) Run() *RunResult {
	for t := 0; t < s.Config.SimSteps; t++ {
		s.Clock = t
		s.step(t)
	}
	s.Result.Finalize(s.Config.NumAgents, s.Config.SimSteps)
	logrus.Debugf("[%s] simulation ended after %d steps: served=%d arrived=%d",
		s.Config.Label, s.Config.SimSteps, s.Result.CallsServed, s.Result.CallsArrived)
	return s.Result
}

// step executes the four phases of one time unit.
func (s *Simulator) step(t int) {
	// Phase 1: advance. Agents reaching 0 here are usable by phase 3.
	s.Agents.Advance()

	// Phase 2: arrival. At most one call per step.
	if s.rng.ForSubsystem(SubsystemArrival).Float64() < s.Config.ArrivalProb {
		s.Queue.Enqueue(t)
		s.Result.CallsArrived++
		logrus.Tracef("[step %06d] call arrived, backlog=%d", t, s.Queue.Len())
	}

	// Phase 3: assignment. FIFO over the queue, lowest idle agent index first.
	for s.Queue.Len() > 0 && s.Agents.IdleCount() > 0 {
		arrivalStep, _ := s.Queue.Dequeue()
		serviceTime := s.drawServiceTime()
		agent := s.Agents.AssignLowestIdle(serviceTime)
		wait := t - arrivalStep
		s.Result.WaitTimes = append(s.Result.WaitTimes, wait)
		s.Result.CallsServed++
		logrus.Tracef("[step %06d] call from step %d assigned to agent %d (waited %d, service %d)",
			t, arrivalStep, agent, wait, serviceTime)
	}

	// Phase 4: recording. Queue length is the residual backlog after
	// assignment; busy count reflects the post-advance, post-assignment state.
	s.Result.QueueLengthSeries = append(s.Result.QueueLengthSeries, s.Queue.Len())
	s.Result.BusySteps += s.Agents.BusyCount()
}

// drawServiceTime returns a uniform random duration in
// [ServiceTimeMin, ServiceTimeMax] inclusive.
func (s *Simulator) drawServiceTime() int {
	span := s.Config.ServiceTimeMax - s.Config.ServiceTimeMin + 1
	return s.Config.ServiceTimeMin + s.rng.ForSubsystem(SubsystemService).Intn(span)
}

// RunScenario is the one-call convenience wrapper: validate, build, run.
func RunScenario(config ScenarioConfig) (*RunResult, error) {
	s, err := NewSimulator(config)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
