package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/pipeline"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample a G(n,p) graph, write it and its source→target path report",
		Long: `Sample an Erdős–Rényi G(n,p) graph with an explicit seed, write it as a
binary edge list, and write the shortest path between --src and --dst as JSON
next to it (50k.bin → 50k.json).

Examples:
  edgepath generate --seed 7
  edgepath generate --n 1000 --p 0.004 --seed 1 --out 1k.bin --yaml-report 1k.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("n") {
				cfg.N, _ = f.GetInt("n")
			}
			if f.Changed("p") {
				cfg.P, _ = f.GetFloat64("p")
			}
			if f.Changed("seed") {
				s, _ := f.GetInt64("seed")
				cfg.Seed = &s
			}
			if f.Changed("src") {
				cfg.Src, _ = f.GetUint32("src")
			}
			if f.Changed("dst") {
				d, _ := f.GetUint32("dst")
				cfg.Dst = &d
			}
			if f.Changed("out") {
				cfg.Out, _ = f.GetString("out")
			}
			if f.Changed("report") {
				cfg.Report, _ = f.GetString("report")
			}
			if f.Changed("yaml-report") {
				cfg.YAMLReport, _ = f.GetString("yaml-report")
			}
			if f.Changed("bidirectional") {
				b, _ := f.GetBool("bidirectional")
				cfg.Engine = engineFlag(b)
			}
			if cfg.Seed == nil {
				return errSeedRequired
			}

			out, err := a.runner().Generate(cmd.Context(), pipeline.GenerateRequest{
				Nodes:       cfg.N,
				Probability: cfg.P,
				Seed:        *cfg.Seed,
				Source:      core.NodeID(cfg.Src),
				Target:      core.NodeID(cfg.target()),
				Out:         cfg.Out,
				Report:      cfg.Report,
				YAMLReport:  cfg.YAMLReport,
				Engine:      pipeline.Engine(cfg.Engine),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "wrote %s (N=%d, M=%d) and %s\n", cfg.Out, out.N, out.M, out.ReportPath)
			a.printPath(out.Report)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int("n", 0, "number of nodes (default 50000)")
	f.Float64("p", 0, "edge probability (default 3/133333)")
	f.Int64("seed", 0, "random seed (required)")
	f.Uint32("src", 0, "path source node")
	f.Uint32("dst", 0, "path target node (default n-1)")
	f.String("out", "", "edge-list output path (default 50k.bin)")
	f.String("report", "", "JSON report path (default <out>.json)")
	f.String("yaml-report", "", "also write the report as YAML to this path")
	f.Bool("bidirectional", false, "answer the query with bidirectional BFS")
	return cmd
}

func (a *app) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answer a shortest-path query on an edge-list file",
		Long: `Decode a binary edge list, build its CSR adjacency and print the
fewest-hop path between --src and --dst.

Examples:
  edgepath query --in 50k.bin --src 0 --dst 12
  edgepath query --in 50k.bin --src 3 --dst 9 --bidirectional --report path.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("in") {
				cfg.In, _ = f.GetString("in")
			}
			if f.Changed("src") {
				cfg.Src, _ = f.GetUint32("src")
			}
			if f.Changed("dst") {
				d, _ := f.GetUint32("dst")
				cfg.Dst = &d
			}
			if f.Changed("report") {
				cfg.Report, _ = f.GetString("report")
			}
			if f.Changed("yaml-report") {
				cfg.YAMLReport, _ = f.GetString("yaml-report")
			}
			if f.Changed("bidirectional") {
				b, _ := f.GetBool("bidirectional")
				cfg.Engine = engineFlag(b)
			}
			if f.Changed("simple") {
				cfg.SimpleEdges, _ = f.GetBool("simple")
			}
			if cfg.In == "" {
				return fmt.Errorf("--in is required")
			}
			if cfg.Dst == nil {
				return fmt.Errorf("--dst is required")
			}

			out, err := a.runner().Query(cmd.Context(), pipeline.QueryRequest{
				In:          cfg.In,
				Source:      core.NodeID(cfg.Src),
				Target:      core.NodeID(*cfg.Dst),
				Report:      cfg.Report,
				YAMLReport:  cfg.YAMLReport,
				Engine:      pipeline.Engine(cfg.Engine),
				SimpleEdges: cfg.SimpleEdges,
			})
			if err != nil {
				return err
			}
			a.printPath(out.Report)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("in", "", "edge-list input path")
	f.Uint32("src", 0, "path source node")
	f.Uint32("dst", 0, "path target node")
	f.String("report", "", "write the JSON report to this path")
	f.String("yaml-report", "", "write the report as YAML to this path")
	f.Bool("bidirectional", false, "use bidirectional BFS")
	f.Bool("simple", false, "drop self-loops and duplicate edges before building")
	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print header, size and degree statistics of an edge-list file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := a.cfg.In
			if cmd.Flags().Changed("in") {
				in, _ = cmd.Flags().GetString("in")
			}
			if in == "" {
				return fmt.Errorf("--in is required")
			}
			sum, err := a.runner().Inspect(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "N=%d M=%d nnz=%d loops=%d isolated=%d max_degree=%d\n",
				sum.N, sum.M, sum.NNZ, sum.Loops, sum.Isolated, sum.MaxDegree)
			if sum.Warning != nil {
				fmt.Fprintf(a.stdout, "warning: %v\n", sum.Warning)
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "edge-list input path")
	return cmd
}

// engineFlag maps the --bidirectional switch to an engine name.
func engineFlag(bidirectional bool) string {
	if bidirectional {
		return string(pipeline.EngineBidirectional)
	}
	return string(pipeline.EngineBFS)
}
