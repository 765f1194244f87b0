/*
Package promreg provides a small metrics-instrumentation core for Go:
lock-free counters and gauges, hierarchical registration with inherited
name prefixes and label attributes, and a renderer for the Prometheus-style
text exposition format.

# Overview

The library is organized around three pieces:

1. Instruments: Counter (monotonic) and Gauge (free-running), each a single
atomic 64-bit unsigned word. The zero value is usable, so an application
declares its metrics as plain struct fields:

	type Met struct {
	  Requests promreg.Counter
	  InFlight promreg.Gauge
	}

2. Registration: a Registry hands a Registration context to each
aggregate's registration routine. The context accumulates a name-prefix
chain and an attribute chain as it is handed into nested components; at the
leaves, a Group collects concrete declarations and commits them on Done:

	reg.NamePrefix("server")
	reg.Group("http").
	  Count("requests", &m.Requests).
	  Gauge("in_flight", &m.InFlight).
	  Attr("proto", "h2").
	  Done()

Attributes stamp at commit time, so Attr applies to declarations made
before it. The registry retains every registered aggregate, which keeps the
declared value references valid for the process lifetime.

3. Rendering: Registry.Render (also fmt.Stringer and WriteTo) serializes
the flat, (name, kind)-sorted metric list. Same-named runs share one
HELP/TYPE pair; metrics without attributes render without a label block.

# Scoped helpers

ChildMetric couples an aggregate with one projected instrument so the
instrument can outlive the scope that produced the aggregate. ActiveGauge
and the duration timers build on it:

	defer promreg.NewActiveGauge(m, func(m *Met) *promreg.Gauge { return &m.InFlight }).Done()

	t := promreg.StartDurationMs(m, func(m *Met) *promreg.Counter { return &m.Elapsed })
	defer t.Done()

# Concurrency

Registration is single-threaded by contract and expected to finish before
steady-state traffic. Instrument updates are lock-free and safe from any
goroutine; rendering may run concurrently with updates, but not with
registration.

# Export

The otelexport subpackage bridges the registered metric list to
OpenTelemetry observable instruments for applications that already ship an
OTel pipeline.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector:

	go test -race ./...
*/
package promreg
