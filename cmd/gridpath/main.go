package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("%s (commit: %s)", version, commit)
	}
	return version + "-dev"
}

// cliFlags mirrors the configuration keys that can be set on the command line.
type cliFlags struct {
	configPath  string
	mapsDir     string
	logLevel    string
	logFormat   string
	metricsFile string
	algorithms  []string
	overlay     []string
	parallel    int
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the gridpath command reading prompts from in, the report
// to out and logs plus errors to errOut.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "gridpath [map ...]",
		Short: "Compare BFS and A* shortest paths on grid maps",
		Long: `gridpath solves text grid maps ('#' wall, 'S' start, 'G' goal) with
breadth-first search and A*, and reports path length, moves, nodes expanded,
peak frontier size and time for each algorithm.

Without arguments it asks for a map file name, relative to --maps-dir.`,
		Version:      versionString(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}
			log := newLogger(cfg, errOut)

			names := args
			if len(names) == 0 {
				name, err := prompt(in, out)
				if err != nil {
					return err
				}
				names = []string{name}
			}
			return run(cmd.Context(), cfg, log, names, out)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetVersionTemplate("gridpath version {{.Version}}\n")

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "gridpath.yaml", "YAML config file (ignored if missing)")
	fl.StringVar(&f.mapsDir, "maps-dir", "", "directory map names are resolved against (env: GRIDPATH_MAPS_DIR)")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug|info|warn|error (env: GRIDPATH_LOG_LEVEL)")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text|json (env: GRIDPATH_LOG_FORMAT)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file (env: GRIDPATH_METRICS_FILE)")
	fl.StringSliceVar(&f.algorithms, "algorithms", nil, "algorithms to run, in order: bfs,astar")
	fl.StringSliceVar(&f.overlay, "overlay", nil, "algorithms whose report shows the marked grid")
	fl.IntVar(&f.parallel, "parallel", 0, "maps solved concurrently, 1..16 (env: GRIDPATH_PARALLEL)")

	return cmd
}

// resolveConfig loads file and environment settings, then applies the flags
// the user actually set. Flags take precedence.
func resolveConfig(cmd *cobra.Command, f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("maps-dir") {
		cfg.MapsDir = f.mapsDir
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fl.Changed("algorithms") {
		cfg.Algorithms = f.algorithms
	}
	if fl.Changed("overlay") {
		cfg.Overlay = f.overlay
	}
	if fl.Changed("parallel") {
		cfg.Parallel = f.parallel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger from cfg, writing to w.
func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
