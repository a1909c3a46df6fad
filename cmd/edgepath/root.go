package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgepath/pipeline"
	"github.com/katalvlaran/edgepath/report"
	"github.com/katalvlaran/edgepath/telemetry"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	cfg        Config
	logger     *slog.Logger
	shutdown   func(context.Context) error
}

// execute runs one invocation with args. Telemetry installed during setup is
// flushed even when the command fails.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if serr := a.shutdown(ctx); serr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown telemetry: %w", serr))
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "edgepath",
		Short:         "Generate binary edge-list graphs and query shortest paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file; flags override its values")
	pf.Bool("verbose", false, "log debug details to stderr")
	pf.Bool("telemetry", false, "export traces and metrics to stderr")

	root.AddCommand(a.generateCmd(), a.queryCmd(), a.inspectCmd())
	return root
}

// setup loads the config, applies persistent flag overrides and installs the
// logger and optional telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("telemetry") {
		cfg.Telemetry, _ = flags.GetBool("telemetry")
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Telemetry {
		tc := telemetry.DefaultConfig()
		tc.Writer = a.stderr
		a.shutdown, err = telemetry.Init(cmd.Context(), tc)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	return nil
}

func (a *app) runner() *pipeline.Runner {
	return pipeline.New(pipeline.WithLogger(a.logger))
}

// printPath writes the human summary of a query to stdout.
func (a *app) printPath(r report.PathReport) {
	if !r.Found() {
		fmt.Fprintf(a.stdout, "no path from %d to %d\n", r.Source, r.Target)
		return
	}
	fmt.Fprintf(a.stdout, "hop count %d: %v\n", *r.HopCount, r.Nodes)
}
