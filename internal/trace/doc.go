// Package trace is the event log of phpfmt.
//
// A run emits spans for the driver, for every file and for every pass
// applied to a file. Events go to a Tracer chosen on the command line:
//
//	phpfmt format --trace=- --trace-level=detail src/
//
// # Tracers
//
//   - Nop: tracing disabled
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last events in memory, dumped when a run fails
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - off: nothing
//   - error: only the ring dump of a failed run
//   - phase: driver and file spans
//   - detail: pass spans as well
//   - debug: everything, including point events
//
// Tracers travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "RTrim", parent)
//	defer span.End("")
package trace
