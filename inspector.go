package promreg

import "sync/atomic"

// Metric is a read-only view of one registered metric, for enumeration by
// admin/debug surfaces and export bridges. Attributes is a defensive copy;
// Value reads the live instrument.
type Metric struct {
	Kind       Kind
	Name       string
	Attributes []Attribute

	value *atomic.Uint64
}

// Value returns the metric's current value.
func (m Metric) Value() uint64 { return m.value.Load() }

// List enumerates the registered metrics in render order.
// Snapshot semantics: best-effort at call time. Safe to call concurrently
// with metric updates, but not with registration.
func (r *Registry) List() []Metric {
	out := make([]Metric, 0, len(r.metrics))
	for _, m := range r.metrics {
		out = append(out, Metric{
			Kind:       m.kind,
			Name:       m.name,
			Attributes: cloneAttributes(m.attributes),
			value:      m.value,
		})
	}
	return out
}
