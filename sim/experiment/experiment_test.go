package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/callsim/callsim/sim"
)

func testConfigs() []sim.ScenarioConfig {
	var configs []sim.ScenarioConfig
	for _, agents := range []int{3, 4, 5} {
		configs = append(configs, sim.ScenarioConfig{
			Label:          "agents",
			NumAgents:      agents,
			ArrivalProb:    0.5,
			ServiceTimeMin: 3,
			ServiceTimeMax: 7,
			SimSteps:       200,
			Seed:           42,
		})
	}
	return configs
}

func TestRun_PreservesInputOrder(t *testing.T) {
	// GIVEN three scenarios with distinct agent counts
	configs := testConfigs()

	// WHEN run concurrently
	summaries, err := Run(context.Background(), configs, Options{Workers: 4})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// THEN summaries come back in input order
	if len(summaries) != len(configs) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(configs))
	}
	for i, ss := range summaries {
		if ss.Config.NumAgents != configs[i].NumAgents {
			t.Errorf("summary %d: agents = %d, want %d", i, ss.Config.NumAgents, configs[i].NumAgents)
		}
	}
}

func TestRun_TrialsUseDerivedSeeds(t *testing.T) {
	// GIVEN one scenario run with 3 trials
	configs := testConfigs()[:1]

	summaries, err := Run(context.Background(), configs, Options{Trials: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// THEN trial i carries seed+i and trial 0 is the representative
	trials := summaries[0].Trials
	if len(trials) != 3 {
		t.Fatalf("got %d trials, want 3", len(trials))
	}
	for i, r := range trials {
		want := configs[0].Seed + int64(i)
		if r.Seed != want {
			t.Errorf("trial %d: seed = %d, want %d", i, r.Seed, want)
		}
	}
	if summaries[0].Representative() != trials[0] {
		t.Error("Representative() is not the first trial")
	}
}

func TestRun_DeterministicUnderConcurrency(t *testing.T) {
	// GIVEN the same batch run twice with different worker counts
	configs := testConfigs()

	first, err := Run(context.Background(), configs, Options{Workers: 1, Trials: 4})
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := Run(context.Background(), configs, Options{Workers: 8, Trials: 4})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	// THEN aggregates are identical: runs own their RNGs, so scheduling
	// order cannot leak into results
	for i := range first {
		if first[i].MeanAvgWait != second[i].MeanAvgWait {
			t.Errorf("scenario %d: MeanAvgWait %v vs %v", i, first[i].MeanAvgWait, second[i].MeanAvgWait)
		}
		if first[i].MeanMaxQueue != second[i].MeanMaxQueue {
			t.Errorf("scenario %d: MeanMaxQueue %v vs %v", i, first[i].MeanMaxQueue, second[i].MeanMaxQueue)
		}
	}
}

func TestRun_InvalidConfigFailsFast(t *testing.T) {
	// GIVEN a batch whose second scenario is invalid
	configs := testConfigs()
	configs[1].NumAgents = 0

	// WHEN run
	summaries, err := Run(context.Background(), configs, Options{})

	// THEN the batch fails before any work, wrapping the sentinel
	if !errors.Is(err, sim.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if summaries != nil {
		t.Error("expected nil summaries on invalid batch")
	}
}

func TestRun_SingleTrialAggregatesMatchRun(t *testing.T) {
	// GIVEN one scenario with a single trial
	configs := testConfigs()[:1]

	summaries, err := Run(context.Background(), configs, Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// THEN mean metrics equal the lone run's metrics
	ss := summaries[0]
	r := ss.Representative()
	if ss.MeanAvgWait != r.AvgWait {
		t.Errorf("MeanAvgWait = %v, want %v", ss.MeanAvgWait, r.AvgWait)
	}
	if ss.MeanThroughput != float64(r.Throughput) {
		t.Errorf("MeanThroughput = %v, want %v", ss.MeanThroughput, float64(r.Throughput))
	}
	if ss.MeanUtilization != r.Utilization {
		t.Errorf("MeanUtilization = %v, want %v", ss.MeanUtilization, r.Utilization)
	}
}
