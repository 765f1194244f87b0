package promreg

import "sync/atomic"

// Counter is a monotonically non-decreasing 64-bit unsigned metric.
// The zero value is ready to use, so metrics structs need no constructor.
//
// Two method families operate on the same underlying word. The Owned*
// family is for call sites that are the metric's sole writer; Inc/Add are
// for handles shared across goroutines (for example through a cloned
// ChildMetric). Go's sync/atomic provides a single memory ordering, so the
// split is a call-site contract rather than a performance distinction; it
// is kept so instrumentation code states its sharing assumption.
type Counter struct {
	v atomic.Uint64
}

// Inc increments the counter by one through a shared handle.
func (c *Counter) Inc() { c.v.Add(1) }

// Add increments the counter by n through a shared handle.
func (c *Counter) Add(n uint64) { c.v.Add(n) }

// OwnedInc increments the counter by one from its sole writer.
func (c *Counter) OwnedInc() { c.v.Add(1) }

// OwnedAdd increments the counter by n from its sole writer.
func (c *Counter) OwnedAdd(n uint64) { c.v.Add(n) }

// Value returns the current value.
func (c *Counter) Value() uint64 { return c.v.Load() }

// Gauge is a free-running 64-bit unsigned metric. Arithmetic wraps on
// overflow; there is no validation. The zero value is ready to use.
//
// The Owned*/shared split follows the same contract as Counter.
type Gauge struct {
	v atomic.Uint64
}

// Inc increments the gauge by one through a shared handle.
func (g *Gauge) Inc() { g.v.Add(1) }

// Dec decrements the gauge by one through a shared handle.
func (g *Gauge) Dec() { g.v.Add(^uint64(0)) }

// Add increments the gauge by n through a shared handle.
func (g *Gauge) Add(n uint64) { g.v.Add(n) }

// Sub decrements the gauge by n through a shared handle.
func (g *Gauge) Sub(n uint64) { g.v.Add(^(n - 1)) }

// Set stores an absolute value.
func (g *Gauge) Set(n uint64) { g.v.Store(n) }

// OwnedInc increments the gauge by one from its sole writer.
func (g *Gauge) OwnedInc() { g.v.Add(1) }

// OwnedDec decrements the gauge by one from its sole writer.
func (g *Gauge) OwnedDec() { g.v.Add(^uint64(0)) }

// OwnedAdd increments the gauge by n from its sole writer.
func (g *Gauge) OwnedAdd(n uint64) { g.v.Add(n) }

// OwnedSub decrements the gauge by n from its sole writer.
func (g *Gauge) OwnedSub(n uint64) { g.v.Add(^(n - 1)) }

// Value returns the current value.
func (g *Gauge) Value() uint64 { return g.v.Load() }
