package pipeline

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "edgepath.pipeline"

// tracer is looked up per call so a provider installed by a later
// telemetry.Init takes effect.
func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// instruments holds the pipeline metric instruments of one meter provider.
type instruments struct {
	provider metric.MeterProvider

	stageLatency metric.Float64Histogram
	queryTotal   metric.Int64Counter
	pathHops     metric.Int64Histogram
	graphEdges   metric.Int64Histogram
}

var (
	metricsMu sync.Mutex
	current   *instruments
)

// loadInstruments returns the instruments of the global meter provider,
// creating them again whenever that provider has been replaced.
func loadInstruments() (*instruments, error) {
	mp := otel.GetMeterProvider()

	metricsMu.Lock()
	defer metricsMu.Unlock()
	if current != nil && current.provider == mp {
		return current, nil
	}

	meter := mp.Meter(instrumentationName)
	in := &instruments{provider: mp}
	var err error

	in.stageLatency, err = meter.Float64Histogram(
		"edgepath_stage_duration_seconds",
		metric.WithDescription("Duration of a pipeline stage"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	in.queryTotal, err = meter.Int64Counter(
		"edgepath_query_total",
		metric.WithDescription("Shortest-path queries answered"),
	)
	if err != nil {
		return nil, err
	}

	in.pathHops, err = meter.Int64Histogram(
		"edgepath_path_hops",
		metric.WithDescription("Hop count of found paths"),
	)
	if err != nil {
		return nil, err
	}

	in.graphEdges, err = meter.Int64Histogram(
		"edgepath_graph_edges",
		metric.WithDescription("Edges per loaded or generated graph"),
	)
	if err != nil {
		return nil, err
	}

	current = in
	return in, nil
}

func recordStage(ctx context.Context, stage string, d time.Duration, ok bool) {
	in, err := loadInstruments()
	if err != nil {
		return
	}
	in.stageLatency.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.Bool("success", ok),
	))
}

func recordQuery(ctx context.Context, engine string, found bool, hops uint32) {
	in, err := loadInstruments()
	if err != nil {
		return
	}
	in.queryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("engine", engine),
		attribute.Bool("found", found),
	))
	if found {
		in.pathHops.Record(ctx, int64(hops))
	}
}

func recordGraph(ctx context.Context, edges int) {
	in, err := loadInstruments()
	if err != nil {
		return
	}
	in.graphEdges.Record(ctx, int64(edges))
}

// startRunSpan opens the root span of a flow.
func startRunSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer().Start(ctx, "Pipeline."+name, trace.WithAttributes(attrs...))
}

// stage runs fn inside a child span and records its duration.
func stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := tracer().Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	recordStage(ctx, name, time.Since(start), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// endRun closes a root span, marking it failed when err is non-nil.
func endRun(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
