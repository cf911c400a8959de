// Tracks per-run performance data: raw accumulators filled in during the
// step loop and the scalar metrics reduced from them after the last step.

package sim

import "fmt"

// RunResult aggregates everything a single scenario run produced. The raw
// sequences are appended to incrementally by the step loop; Finalize reduces
// them to scalars once, after the last step, and the result is treated as
// immutable from then on.
//
// Invariants: CallsServed <= CallsArrived, len(WaitTimes) == CallsServed
// (waits are recorded at the moment of assignment), and
// len(QueueLengthSeries) == SimSteps of the config that produced the run.
type RunResult struct {
	Label string // scenario label this run belongs to
	Seed  int64  // master seed the run was executed with

	WaitTimes         []int // per-call wait in steps, in assignment order
	QueueLengthSeries []int // residual backlog recorded at every step
	BusySteps         int   // sum over steps and agents of the busy indicator
	CallsArrived      int   // calls admitted into the system
	CallsServed       int   // calls bound to an agent

	// Reduced metrics, populated by Finalize.
	AvgWait     float64 // mean wait in steps, 0 if nothing was served
	P50Wait     float64 // median wait
	P95Wait     float64 // 95th percentile wait
	P99Wait     float64 // 99th percentile wait
	MaxQueue    int     // peak backlog over the run
	Throughput  int     // calls served
	Utilization float64 // busy fraction of total agent-step capacity, in [0,1]
}

// NewRunResult creates an empty result for one scenario run.
func NewRunResult(label string, seed int64) *RunResult {
	return &RunResult{Label: label, Seed: seed}
}

// Finalize reduces the accumulated sequences into scalar metrics. Empty
// accumulators are valid steady states: every metric over an empty sequence
// is defined as 0 rather than failing on division by zero.
func (r *RunResult) Finalize(numAgents, simSteps int) {
	r.AvgWait = Mean(r.WaitTimes)
	r.P50Wait = Percentile(r.WaitTimes, 50)
	r.P95Wait = Percentile(r.WaitTimes, 95)
	r.P99Wait = Percentile(r.WaitTimes, 99)
	r.MaxQueue = MaxInt(r.QueueLengthSeries)
	r.Throughput = r.CallsServed
	r.Utilization = float64(r.BusySteps) / float64(numAgents*simSteps)
}

// Print displays the reduced metrics of a finalized run.
func (r *RunResult) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Scenario             : %s (seed %d)\n", r.Label, r.Seed)
	fmt.Printf("Calls Arrived        : %d\n", r.CallsArrived)
	fmt.Printf("Calls Served         : %d\n", r.CallsServed)
	fmt.Printf("Average Wait         : %.2f steps\n", r.AvgWait)
	fmt.Printf("P95 Wait             : %.2f steps\n", r.P95Wait)
	fmt.Printf("Max Queue Length     : %d\n", r.MaxQueue)
	fmt.Printf("Utilization          : %.1f%%\n", r.Utilization*100)
}
