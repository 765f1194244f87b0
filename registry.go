package promreg

import (
	"sort"
	"sync/atomic"
)

// Kind identifies the metric kind of a registered entry.
type Kind uint8

const (
	KindCounter Kind = iota
	KindGauge
)

// String returns the kind name used on TYPE lines.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Attribute is one key-value label pair. Chains keep insertion order and
// duplicate keys are deliberately not deduplicated; every occurrence
// renders.
type Attribute struct {
	Key   string
	Value string
}

type registeredMetric struct {
	kind       Kind
	name       string // fully qualified, all ancestor prefixes applied
	value      *atomic.Uint64
	attributes []Attribute
}

// Registerable is implemented by metrics aggregates that know how to
// describe their own metrics. Implementations narrow the context and open
// groups; nested aggregates are described by handing them a Child context.
type Registerable interface {
	RegisterMetrics(reg *Registration)
}

// NoMetrics is a Registerable that registers nothing. Useful as a default
// for components whose metrics are optional.
type NoMetrics struct{}

// RegisterMetrics implements Registerable.
func (NoMetrics) RegisterMetrics(*Registration) {}

// Registry is the top-level store of registered metrics and the text
// renderer. Registration is expected to happen single-threaded, at startup,
// before steady-state traffic; once registration is done, rendering may run
// concurrently with metric updates.
//
// The registry retains every registered aggregate so the value pointers in
// its metric list stay reachable for the process lifetime; the holders list
// has no other role.
type Registry struct {
	holders        []any
	metrics        []registeredMetric
	baseAttributes []Attribute
	logger         Logger
}

// New constructs a Registry. Base attributes, program metadata, and a
// diagnostics logger are supplied through options.
func New(opts ...Option) *Registry {
	cfg := registryConfig{logger: newNoopLogger()}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return &Registry{
		baseAttributes: cfg.baseAttributes,
		logger:         cfg.logger,
	}
}

// Register runs the aggregate's own registration routine with a fresh
// context seeded from the registry's base attributes, and retains the
// aggregate for the registry's lifetime.
func (r *Registry) Register(m Registerable) {
	r.holders = append(r.holders, m)
	m.RegisterMetrics(r.newRegistration())
}

// RegisterWith registers an aggregate through a caller-supplied routine,
// for types without intrinsic registration logic. It is a package-level
// function because Go methods cannot be parameterized.
func RegisterWith[M any](r *Registry, m *M, register func(m *M, reg *Registration)) {
	r.holders = append(r.holders, m)
	register(m, r.newRegistration())
}

func (r *Registry) newRegistration() *Registration {
	return &Registration{
		registry:   r,
		attributes: cloneAttributes(r.baseAttributes),
	}
}

// commit appends flushed group declarations and restores the sort
// invariant: entries ordered by name, then kind, so same-named runs are
// contiguous for rendering.
func (r *Registry) commit(pending []registeredMetric) {
	r.metrics = append(r.metrics, pending...)
	sort.SliceStable(r.metrics, func(i, j int) bool {
		a, b := r.metrics[i], r.metrics[j]
		if a.name != b.name {
			return a.name < b.name
		}
		return a.kind < b.kind
	})
	for _, m := range pending {
		r.logger.Debugf("registered %s %s", m.kind, m.name)
	}
}

func cloneAttributes(attrs []Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return out
}
