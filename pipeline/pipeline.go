package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/edgepath/bfs"
	"github.com/katalvlaran/edgepath/builder"
	"github.com/katalvlaran/edgepath/codec"
	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
	"github.com/katalvlaran/edgepath/report"
)

// ErrNoOutput is returned when a flow has nowhere to write its graph.
var ErrNoOutput = errors.New("pipeline: output path is empty")

// ErrReportClobbersOutput is returned when a report path names the edge-list
// file of the same run.
var ErrReportClobbersOutput = errors.New("pipeline: report path would overwrite the edge list")

// Engine selects the shortest-path algorithm.
type Engine string

const (
	EngineBFS           Engine = "bfs"
	EngineBidirectional Engine = "bidirectional"
)

// Runner executes pipeline flows. The zero value is not usable; call New.
type Runner struct {
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Runner logging to slog.Default() unless overridden.
func New(opts ...Option) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateRequest describes one generate run.
type GenerateRequest struct {
	Nodes       int
	Probability float64
	Seed        int64
	Source      core.NodeID
	Target      core.NodeID
	Out         string // binary edge-list path
	Report      string // JSON report path; report.FileName(Out) when empty
	YAMLReport  string // optional YAML copy of the report
	Engine      Engine
}

// QueryRequest describes one query run against an existing file.
type QueryRequest struct {
	In          string
	Source      core.NodeID
	Target      core.NodeID
	Report      string // optional JSON report path
	YAMLReport  string // optional YAML copy of the report
	Engine      Engine
	SimpleEdges bool
}

// Outcome summarizes a generate or query run.
type Outcome struct {
	N          uint32
	M          int
	Result     *bfs.PathResult
	Report     report.PathReport
	ReportPath string
	Warning    *codec.SizeMismatchWarning
}

// Generate samples G(n,p), writes the edge-list file, answers the
// source→target query on the generated graph and writes the JSON report.
func (r *Runner) Generate(ctx context.Context, req GenerateRequest) (out *Outcome, err error) {
	if req.Out == "" {
		return nil, ErrNoOutput
	}
	reportPath := req.Report
	if reportPath == "" {
		reportPath = report.FileName(req.Out)
	}
	if err = checkReportPaths(req.Out, reportPath, req.YAMLReport); err != nil {
		return nil, err
	}
	ctx, span := startRunSpan(ctx, "Generate",
		attribute.Int("graph.nodes", req.Nodes),
		attribute.Float64("graph.probability", req.Probability),
		attribute.Int64("graph.seed", req.Seed),
	)
	defer func() { endRun(span, err) }()

	var edges core.EdgeList
	err = stage(ctx, "generate", func(context.Context) error {
		var gerr error
		edges, gerr = builder.Generate(req.Nodes, req.Probability, builder.WithSeed(req.Seed))
		return gerr
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: generate: %w", err)
	}
	n := uint32(req.Nodes)
	r.logger.Info("generated graph", "n", n, "m", len(edges), "p", req.Probability, "seed", req.Seed)
	recordGraph(ctx, len(edges))

	err = stage(ctx, "encode", func(context.Context) error {
		return codec.WriteFile(req.Out, n, edges)
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: write %s: %w", req.Out, err)
	}
	r.logger.Info("wrote edge list", "path", req.Out, "bytes", codec.ExpectedSize(uint32(len(edges))))

	out = &Outcome{N: n, M: len(edges)}
	if err = r.answer(ctx, out, n, edges, req.Source, req.Target, req.Engine, false); err != nil {
		return nil, err
	}

	out.ReportPath = reportPath
	if err = r.writeReports(ctx, out, req.YAMLReport); err != nil {
		return nil, err
	}
	return out, nil
}

// Query decodes an edge-list file, builds its CSR form and answers one
// shortest-path query. The report is written only when req.Report is set.
func (r *Runner) Query(ctx context.Context, req QueryRequest) (out *Outcome, err error) {
	if err = checkReportPaths(req.In, req.Report, req.YAMLReport); err != nil {
		return nil, err
	}
	ctx, span := startRunSpan(ctx, "Query",
		attribute.String("input", req.In),
		attribute.Int64("query.source", int64(req.Source)),
		attribute.Int64("query.target", int64(req.Target)),
	)
	defer func() { endRun(span, err) }()

	dec, err := r.load(ctx, req.In)
	if err != nil {
		return nil, err
	}

	out = &Outcome{N: dec.N, M: len(dec.Edges), Warning: dec.Warning}
	if err = r.answer(ctx, out, dec.N, dec.Edges, req.Source, req.Target, req.Engine, req.SimpleEdges); err != nil {
		return nil, err
	}
	out.ReportPath = req.Report
	if err = r.writeReports(ctx, out, req.YAMLReport); err != nil {
		return nil, err
	}
	return out, nil
}

// checkReportPaths rejects any non-empty report path that resolves to graph.
func checkReportPaths(graph string, reports ...string) error {
	g := filepath.Clean(graph)
	for _, p := range reports {
		if p != "" && filepath.Clean(p) == g {
			return fmt.Errorf("%w: %s", ErrReportClobbersOutput, p)
		}
	}
	return nil
}

// Summary describes a decoded edge-list file.
type Summary struct {
	N         uint32
	M         uint32
	NNZ       uint64
	Loops     int
	Isolated  uint32
	MaxDegree int
	Warning   *codec.SizeMismatchWarning
}

// Inspect decodes a file and reports its size and degree statistics.
func (r *Runner) Inspect(ctx context.Context, path string) (sum *Summary, err error) {
	ctx, span := startRunSpan(ctx, "Inspect", attribute.String("input", path))
	defer func() { endRun(span, err) }()

	dec, err := r.load(ctx, path)
	if err != nil {
		return nil, err
	}
	var g *csr.SparseGraph
	err = stage(ctx, "build", func(context.Context) error {
		var berr error
		g, berr = csr.Build(dec.N, dec.Edges)
		return berr
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: build: %w", err)
	}

	sum = &Summary{N: dec.N, M: dec.M, NNZ: g.NNZ(), Warning: dec.Warning}
	for _, e := range dec.Edges {
		if e.IsLoop() {
			sum.Loops++
		}
	}
	for u := core.NodeID(0); u < g.Order(); u++ {
		d := len(g.Row(u))
		if d == 0 {
			sum.Isolated++
		}
		if d > sum.MaxDegree {
			sum.MaxDegree = d
		}
	}
	return sum, nil
}

// load reads and decodes path, logging a size-mismatch warning if present.
func (r *Runner) load(ctx context.Context, path string) (*codec.Decoded, error) {
	var dec *codec.Decoded
	err := stage(ctx, "decode", func(context.Context) error {
		var derr error
		dec, derr = codec.ReadFile(path)
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if w := dec.Warning; w != nil {
		r.logger.Warn("edge list size mismatch",
			"path", path,
			"expected_bytes", w.Expected,
			"actual_bytes", w.Actual,
			"trailing_bytes", w.Trailing(),
		)
	}
	r.logger.Debug("decoded edge list", "path", path, "n", dec.N, "m", dec.M)
	recordGraph(ctx, len(dec.Edges))
	return dec, nil
}

// answer builds the CSR graph and runs the selected engine, filling out.
func (r *Runner) answer(ctx context.Context, out *Outcome, n uint32, edges core.EdgeList,
	src, dst core.NodeID, engine Engine, simple bool) error {
	var opts []csr.Option
	if simple {
		opts = append(opts, csr.WithSimpleEdges())
	}

	var g *csr.SparseGraph
	err := stage(ctx, "build", func(context.Context) error {
		var berr error
		g, berr = csr.Build(n, edges, opts...)
		return berr
	})
	if err != nil {
		return fmt.Errorf("pipeline: build: %w", err)
	}
	r.logger.Debug("built csr", "n", g.Order(), "nnz", g.NNZ())

	if engine == "" {
		engine = EngineBFS
	}
	var res *bfs.PathResult
	err = stage(ctx, "query", func(ctx context.Context) error {
		var qerr error
		switch engine {
		case EngineBFS:
			res, qerr = bfs.ShortestPath(g, src, dst, bfs.WithContext(ctx))
		case EngineBidirectional:
			res, qerr = bfs.BidirectionalShortestPath(g, src, dst, bfs.WithContext(ctx))
		default:
			qerr = fmt.Errorf("unknown engine %q", engine)
		}
		return qerr
	})
	if err != nil {
		return fmt.Errorf("pipeline: query %d→%d: %w", src, dst, err)
	}

	hops, found := res.Hops()
	recordQuery(ctx, string(engine), found, hops)
	if found {
		r.logger.Info("path found", "source", src, "target", dst, "hop_count", hops, "engine", engine)
	} else {
		r.logger.Info("no path found", "source", src, "target", dst, "engine", engine)
	}

	out.Result = res
	out.Report = report.New(res)
	return nil
}

// writeReports writes the JSON report (when out.ReportPath is set) and the
// optional YAML copy.
func (r *Runner) writeReports(ctx context.Context, out *Outcome, yamlPath string) error {
	return stage(ctx, "report", func(context.Context) error {
		if out.ReportPath != "" {
			if err := out.Report.WriteFile(out.ReportPath); err != nil {
				return fmt.Errorf("pipeline: %w", err)
			}
			r.logger.Info("wrote path report", "path", out.ReportPath)
		}
		if yamlPath != "" {
			if err := out.Report.WriteYAMLFile(yamlPath); err != nil {
				return fmt.Errorf("pipeline: %w", err)
			}
			r.logger.Info("wrote yaml report", "path", yamlPath)
		}
		return nil
	})
}
