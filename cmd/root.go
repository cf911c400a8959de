package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/callsim/callsim/sim"
	"github.com/callsim/callsim/sim/report"
)

var (
	// CLI flags shared by the run command
	seed        int64   // Master seed for the run's RNG
	numAgents   int     // Number of serving agents
	arrivalProb float64 // Probability of one call arriving per step
	serviceMin  int     // Minimum call duration in steps
	serviceMax  int     // Maximum call duration in steps
	simSteps    int     // Total steps to simulate
	label       string  // Scenario label used in output
	logLevel    string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "callsim",
	Short: "Discrete-time simulator for call center queues",
}

// runCmd executes a single scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one call center scenario",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		config := sim.ScenarioConfig{
			Label:          label,
			NumAgents:      numAgents,
			ArrivalProb:    arrivalProb,
			ServiceTimeMin: serviceMin,
			ServiceTimeMax: serviceMax,
			SimSteps:       simSteps,
			Seed:           seed,
		}

		logrus.Infof("Starting simulation %q: agents=%d arrivalProb=%v service=[%d,%d] steps=%d seed=%d",
			config.Label, config.NumAgents, config.ArrivalProb,
			config.ServiceTimeMin, config.ServiceTimeMax, config.SimSteps, config.Seed)

		result, err := sim.RunScenario(config)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := report.WriteResult(os.Stdout, result); err != nil {
			logrus.Fatalf("Rendering report failed: %v", err)
		}

		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies the --log flag to the global logrus logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for the run's random streams")
	runCmd.Flags().IntVar(&numAgents, "agents", 3, "Number of serving agents")
	runCmd.Flags().Float64Var(&arrivalProb, "arrival-prob", 0.5, "Probability of one call arriving per step")
	runCmd.Flags().IntVar(&serviceMin, "service-min", 3, "Minimum call duration in steps")
	runCmd.Flags().IntVar(&serviceMax, "service-max", 7, "Maximum call duration in steps")
	runCmd.Flags().IntVar(&simSteps, "steps", 2000, "Total steps to simulate")
	runCmd.Flags().StringVar(&label, "label", "adhoc", "Scenario label used in output")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
