package promreg

import "time"

// ActiveGauge tracks one in-flight operation: construction increments the
// projected gauge, Done decrements it. Use with defer so the decrement runs
// on every exit path:
//
//	defer promreg.NewActiveGauge(m, func(m *Met) *promreg.Gauge { return &m.InFlight }).Done()
//
// Increments and decrements go through the shared tier, so overlapping
// scopes on different goroutines sum correctly.
type ActiveGauge[M any] struct {
	gauge ChildMetric[M, Gauge]
	done  bool
}

// NewActiveGauge projects the gauge out of owner and increments it.
func NewActiveGauge[M any](owner *M, get func(*M) *Gauge) *ActiveGauge[M] {
	a := &ActiveGauge[M]{gauge: NewChildMetric(owner, get)}
	a.gauge.Metric().Inc()
	return a
}

// Done decrements the gauge. Calling Done more than once is a no-op.
func (a *ActiveGauge[M]) Done() {
	if a == nil || a.done {
		return
	}
	a.done = true
	a.gauge.Metric().Dec()
}

// DurationMs records the wall time of a scope into a counter, truncated to
// whole milliseconds. The start instant comes from time.Now, whose
// monotonic reading makes the measurement immune to wall-clock adjustments.
type DurationMs[M any] struct {
	start time.Time
	count ChildMetric[M, Counter]
	done  bool
}

// StartDurationMs captures the start instant and projects the counter.
func StartDurationMs[M any](owner *M, get func(*M) *Counter) *DurationMs[M] {
	return &DurationMs[M]{start: time.Now(), count: NewChildMetric(owner, get)}
}

// Done adds the elapsed milliseconds to the counter, once.
func (d *DurationMs[M]) Done() {
	if d == nil || d.done {
		return
	}
	d.done = true
	d.count.Metric().Add(uint64(time.Since(d.start).Milliseconds()))
}

// DurationUs is DurationMs at microsecond resolution.
type DurationUs[M any] struct {
	start time.Time
	count ChildMetric[M, Counter]
	done  bool
}

// StartDurationUs captures the start instant and projects the counter.
func StartDurationUs[M any](owner *M, get func(*M) *Counter) *DurationUs[M] {
	return &DurationUs[M]{start: time.Now(), count: NewChildMetric(owner, get)}
}

// Done adds the elapsed microseconds to the counter, once.
func (d *DurationUs[M]) Done() {
	if d == nil || d.done {
		return
	}
	d.done = true
	d.count.Metric().Add(uint64(time.Since(d.start).Microseconds()))
}
