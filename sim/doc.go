// Package sim provides the core discrete-time simulation engine for callsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - config.go: ScenarioConfig validation and the InvalidConfiguration error
//   - agents.go / queue.go: agent pool state and the FIFO call backlog
//   - simulator.go: the step loop (advance, arrival, assignment, recording)
//
// # Architecture
//
// The sim package owns a single scenario run; orchestration lives in
// sub-packages:
//   - sim/experiment/: concurrent multi-scenario and multi-trial execution
//   - sim/report/: console summary and comparison tables
//   - sim/chart/: PNG chart rendering of finalized results
//
// A run is deterministic given its ScenarioConfig: randomness flows only
// through the PartitionedRNG derived from the config's seed (rng.go), so two
// runs of the same config produce bit-for-bit identical RunResults.
//
// # Step Ordering Policy
//
// Within one step the simulator always executes advance, then arrival, then
// assignment, then recording. Advancing busy agents first means an agent that
// finishes its call frees capacity for an already-waiting call within the
// same time unit, avoiding an artificial one-step idle gap. This ordering is
// a fixed policy of the engine, not a tunable.
package sim
