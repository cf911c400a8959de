package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/callsim/callsim/sim/chart"
	"github.com/callsim/callsim/sim/experiment"
	"github.com/callsim/callsim/sim/report"
)

var (
	scenariosFile string // YAML scenario file (optional)
	trials        int    // Seeded replications per scenario
	workers       int    // Concurrent runs (0 = GOMAXPROCS)
	chartsDir     string // Output directory for PNG charts (empty = no charts)
)

// compareCmd runs a batch of scenarios and reports them side by side
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several scenarios and compare their queue metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		configs := DefaultScenarios(seed)
		if scenariosFile != "" {
			loaded, err := LoadScenarios(scenariosFile, seed)
			if err != nil {
				logrus.Fatalf("Loading scenarios from %s: %v", scenariosFile, err)
			}
			configs = loaded
		}

		logrus.Infof("Comparing %d scenarios, %d trial(s) each, seed=%d", len(configs), trials, seed)

		summaries, err := experiment.Run(context.Background(), configs, experiment.Options{
			Workers:  workers,
			Trials:   trials,
			Progress: trials > 1,
		})
		if err != nil {
			logrus.Fatalf("Experiment failed: %v", err)
		}

		if err := report.WriteComparison(os.Stdout, summaries); err != nil {
			logrus.Fatalf("Rendering comparison failed: %v", err)
		}

		if chartsDir != "" {
			if err := chart.RenderAll(chartsDir, summaries); err != nil {
				logrus.Fatalf("Rendering charts failed: %v", err)
			}
			logrus.Infof("Charts written to %s", chartsDir)
		}
	},
}

func init() {
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed; trial i of each scenario runs with seed+i")
	compareCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML scenario file (default: built-in 3/4/5-agent set)")
	compareCmd.Flags().IntVar(&trials, "trials", 1, "Seeded replications per scenario")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent runs (0 = number of CPUs)")
	compareCmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for PNG charts (empty disables charts)")
	compareCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(compareCmd)
}
