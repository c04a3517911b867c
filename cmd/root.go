package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/simplesim/sim"
	"github.com/inference-sim/simplesim/sim/restaurant"
	"github.com/inference-sim/simplesim/sim/trace"
)

var (
	// CLI flags for the run
	configPath   string  // YAML scenario file (empty = built-in restaurant scenario)
	replications int     // Number of independent replications
	horizon      float64 // Max simulation time per replication (minutes)
	seed         int64   // Seed for the run's random stream
	logLevel     string  // Log verbosity level
	traceLevel   string  // Trace verbosity: none, events
	resultsPath  string  // File to save results JSON (empty = do not save)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "simplesim",
	Short: "Discrete-event simulation micro-engine",
}

// runCmd executes the restaurant scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the restaurant counter simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s (valid: none, events)", traceLevel)
		}

		opts := runOptions{
			ConfigPath:   configPath,
			Replications: replications,
			Horizon:      horizon,
			Seed:         seed,
			TraceLevel:   trace.TraceLevel(traceLevel),
			ResultsPath:  resultsPath,
		}
		if err := runScenario(opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runOptions carries the resolved flag values into runScenario.
type runOptions struct {
	ConfigPath   string
	Replications int
	Horizon      float64
	Seed         int64
	TraceLevel   trace.TraceLevel
	ResultsPath  string
}

// runScenario builds the restaurant model, runs it and reports the Stats.
func runScenario(opts runOptions, out io.Writer) error {
	cfg := restaurant.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := restaurant.LoadConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	model, err := restaurant.NewModel(cfg)
	if err != nil {
		return err
	}

	runCfg := sim.NewRunConfig(opts.Replications, opts.Horizon, opts.Seed)
	runCfg.TraceLevel = opts.TraceLevel
	runner, err := sim.NewRunner(runCfg)
	if err != nil {
		return err
	}

	logrus.Infof("Starting simulation: replications=%d, horizon=%v, seed=%d, config=%q",
		opts.Replications, opts.Horizon, opts.Seed, opts.ConfigPath)
	st, err := runner.Run(model)
	if err != nil {
		return err
	}

	if err := st.Print(out); err != nil {
		return err
	}
	if opts.ResultsPath != "" {
		return saveResults(opts.ResultsPath, newResults(runCfg, st, runner.Trace()))
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults, err := loadEnvDefaults()
	if err != nil {
		logrus.Warnf("Ignoring environment overrides: %v", err)
		defaults = builtinDefaults()
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (default: built-in restaurant scenario)")
	runCmd.Flags().IntVar(&replications, "replications", defaults.Replications, "Number of independent replications")
	runCmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Max simulation time per replication (minutes)")
	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the run's random stream")
	runCmd.Flags().StringVar(&logLevel, "log", defaults.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, events)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "File to save results JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
