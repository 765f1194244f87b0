package promreg

// ChildMetric couples a metrics aggregate with one projected instrument
// inside it, so the instrument can be retained and used independently of
// the scope that produced the aggregate. The pair is copied as a value;
// every copy carries the owner pointer, which keeps the aggregate reachable
// for as long as any copy is live. Retaining the projected pointer without
// the owner is not possible through this type.
//
// The projection runs once, at construction. It must return a pointer into
// owner (or one of its owned sub-fields).
type ChildMetric[M any, C any] struct {
	owner  *M
	metric *C
}

// NewChildMetric projects one instrument out of owner.
func NewChildMetric[M any, C any](owner *M, get func(*M) *C) ChildMetric[M, C] {
	return ChildMetric[M, C]{owner: owner, metric: get(owner)}
}

// Metric returns the projected instrument.
func (c ChildMetric[M, C]) Metric() *C { return c.metric }

// Owner returns the aggregate the instrument was projected from.
func (c ChildMetric[M, C]) Owner() *M { return c.owner }
