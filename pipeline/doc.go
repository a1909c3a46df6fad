// Package pipeline wires the edgepath components into the two end-to-end
// flows of the command line tool.
//
//	Generate: builder.Generate → codec.WriteFile → csr.Build → bfs → report
//	Query:    codec.ReadFile → csr.Build → bfs → report
//	Inspect:  codec.ReadFile → csr.Build → degree summary
//
// Runner is the only place in the module that logs. Size-mismatch warnings
// from the codec are logged with slog.Warn and surfaced on the outcome; they
// never fail a run. Each flow opens an OpenTelemetry span with one child span
// per stage and records stage durations on the global meter. With no provider
// installed both are no-ops.
package pipeline
