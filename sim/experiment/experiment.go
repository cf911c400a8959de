// Package experiment runs batches of scenarios. Runs share no mutable state,
// so scenarios and replication trials execute concurrently on a bounded
// worker group; within one run steps stay strictly sequential.
package experiment

import (
	"context"
	"fmt"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/callsim/callsim/sim"
)

// Options controls batch execution.
type Options struct {
	// Workers bounds concurrent runs; 0 means GOMAXPROCS.
	Workers int
	// Trials is the number of seeded replications per scenario; 0 and 1 both
	// mean a single run with the scenario's own seed. Trial i runs with
	// seed+i, so a batch is fully determined by the configs.
	Trials int
	// Progress renders a progress bar across all runs in the batch.
	Progress bool
}

// ScenarioSummary aggregates the replication trials of one scenario.
// The mean metrics are what comparisons and charts should use; Trials keeps
// every finalized run for callers that need the raw data.
type ScenarioSummary struct {
	Config sim.ScenarioConfig
	Trials []*sim.RunResult

	MeanAvgWait     float64
	MeanMaxQueue    float64
	MeanThroughput  float64
	MeanUtilization float64
}

// Representative returns the first trial's result, the one run with the
// scenario's own seed. Charts use its queue-length series.
func (ss *ScenarioSummary) Representative() *sim.RunResult {
	return ss.Trials[0]
}

// Run executes every scenario (and its trials) concurrently and returns
// summaries in the same order as the input configs. It fails fast on the
// first invalid config; valid configs never fail mid-run.
func Run(ctx context.Context, configs []sim.ScenarioConfig, opts Options) ([]*ScenarioSummary, error) {
	trials := opts.Trials
	if trials < 1 {
		trials = 1
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Validate everything up front so a bad config in the middle of the batch
	// cannot waste work on the others.
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", cfg.Label, err)
		}
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(configs)*trials), "simulating")
	}

	summaries := make([]*ScenarioSummary, len(configs))
	for i, cfg := range configs {
		summaries[i] = &ScenarioSummary{
			Config: cfg,
			Trials: make([]*sim.RunResult, trials),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range configs {
		for j := 0; j < trials; j++ {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				cfg := configs[i].WithSeed(configs[i].Seed + int64(j))
				result, err := sim.RunScenario(cfg)
				if err != nil {
					return fmt.Errorf("scenario %q trial %d: %w", cfg.Label, j, err)
				}
				summaries[i].Trials[j] = result
				if bar != nil {
					_ = bar.Add(1)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	for _, ss := range summaries {
		ss.aggregate()
	}
	return summaries, nil
}

// aggregate reduces the trial results into mean metrics.
func (ss *ScenarioSummary) aggregate() {
	n := len(ss.Trials)
	avgWaits := make([]float64, n)
	maxQueues := make([]float64, n)
	throughputs := make([]float64, n)
	utilizations := make([]float64, n)
	for i, r := range ss.Trials {
		avgWaits[i] = r.AvgWait
		maxQueues[i] = float64(r.MaxQueue)
		throughputs[i] = float64(r.Throughput)
		utilizations[i] = r.Utilization
	}
	ss.MeanAvgWait = stat.Mean(avgWaits, nil)
	ss.MeanMaxQueue = stat.Mean(maxQueues, nil)
	ss.MeanThroughput = stat.Mean(throughputs, nil)
	ss.MeanUtilization = stat.Mean(utilizations, nil)
}
