package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/internal/config"
	"github.com/katalvlaran/pathtrace/internal/ctxlog"
	"github.com/katalvlaran/pathtrace/internal/render"
)

// errMissingEndpoint is returned when a command needs a vertex that was
// given neither on the command line nor in the config file.
var errMissingEndpoint = errors.New("missing endpoint")

// errVerifyMismatch is returned by trace --verify when the exhaustive
// search disagrees with the traced result.
var errVerifyMismatch = errors.New("verification failed")

// errNodeFlags rejects --nodes together with --node-count.
var errNodeFlags = errors.New("--nodes and --node-count are mutually exclusive")

// app carries the flag values and the state resolved before each command.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	// Overrides; applied only when the flag was set.
	seed      int64
	nodes     []string
	nodeCount int
	prob      float64
	weightMin int64
	weightMax int64
	color     string
	delay     time.Duration
	start     string
	goal      string

	cfg config.Config
	r   *render.Renderer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "pathtrace",
		Short: "Generate random weighted graphs and trace Dijkstra's algorithm over them",
		Long: `pathtrace draws a random connected weighted graph and walks Dijkstra's
shortest-path search over it one observable step at a time.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", ctxlog.FormatText, "log format: text or json")
	pf.Int64Var(&a.seed, "seed", builder.DefaultSeed, "random seed")
	pf.StringSliceVar(&a.nodes, "nodes", nil, "comma-separated vertex IDs (default A..G)")
	pf.IntVar(&a.nodeCount, "node-count", 0, "generate this many vertices named A, B, ... Z, AA, AB, ...")
	pf.Float64Var(&a.prob, "probability", builder.DefaultExtraEdgeProbability, "probability of each extra edge")
	pf.Int64Var(&a.weightMin, "weight-min", builder.DefaultWeightRange.Min, "smallest edge weight")
	pf.Int64Var(&a.weightMax, "weight-max", builder.DefaultWeightRange.Max, "largest edge weight")
	pf.StringVar(&a.color, "color", config.ColorAuto, "colour output: auto, always, never")

	root.AddCommand(
		newGenerateCmd(a),
		newTraceCmd(a),
		newDistancesCmd(a),
		newTUICmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides, validates the
// result and installs a run-scoped logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	switch {
	case flags.Changed("nodes") && flags.Changed("node-count"):
		return errNodeFlags
	case flags.Changed("nodes"):
		cfg.Nodes = a.nodes
	case flags.Changed("node-count"):
		cfg.Nodes = builder.Alphabet(a.nodeCount, builder.ExcelColumnIDFn)
	}
	if flags.Changed("probability") {
		cfg.ExtraEdgeProbability = a.prob
	}
	if flags.Changed("weight-min") {
		cfg.WeightRange.Min = a.weightMin
	}
	if flags.Changed("weight-max") {
		cfg.WeightRange.Max = a.weightMax
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	// Command-local flags; Changed is false where a command lacks them.
	if flags.Changed("delay") {
		cfg.StepDelay = a.delay
	}
	if flags.Changed("start") || flags.Changed("source") {
		cfg.Start = a.start
	}
	if flags.Changed("goal") {
		cfg.Goal = a.goal
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := ctxlog.New(a.stderr, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	a.r = render.New(a.stdout, render.ColorEnabled(cfg.Color, a.stdout))
	logger.Debug("configuration resolved",
		"nodes", len(cfg.Nodes),
		"probability", cfg.ExtraEdgeProbability,
		"weights", cfg.Weights().String(),
		"seed", cfg.Seed,
		"config", a.configPath)

	return nil
}

// graph generates the configured graph.
func (a *app) graph(cmd *cobra.Command) (*core.Graph, error) {
	g, err := builder.Generate(a.cfg.Nodes, a.cfg.ExtraEdgeProbability, a.cfg.Weights(),
		builder.WithSeed(a.cfg.Seed))
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(cmd.Context()).Info("graph generated",
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", a.cfg.Seed)
	return g, nil
}

// endpoint returns v or reports which flag is missing.
func endpoint(v, flag string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("%w: set --%s or %q in the config file", errMissingEndpoint, flag, flag)
	}
	return v, nil
}
