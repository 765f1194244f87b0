package otelexport

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ygrebnov/promreg"
)

var (
	ErrNilMeter    = errors.New("nil meter")
	ErrNilRegistry = errors.New("nil registry")
)

// observed pairs one registered metric with the instrument it reports
// through. Several metrics can share an instrument: the exposition model
// distinguishes them by attributes, OTel by attribute sets on the same
// instrument name.
type observed struct {
	metric     promreg.Metric
	instrument metric.Int64Observable
	attrs      metric.ObserveOption
}

// Exporter reports a promreg.Registry's metrics through an OpenTelemetry
// meter. Counters become Int64ObservableCounters, gauges
// Int64ObservableGauges; values are read from the live instruments inside
// one registered callback, so collection always sees current values.
type Exporter struct {
	registration metric.Registration
	entries      []observed
}

// New builds an exporter over the registry's current metric list and
// registers its collection callback with meter.
//
// Build the exporter after registration completes; the registry's list is
// not safe to enumerate concurrently with registration.
func New(meter metric.Meter, reg *promreg.Registry) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}

	list := reg.List()

	exporter := &Exporter{entries: make([]observed, 0, len(list))}
	observables := make([]metric.Observable, 0, len(list))

	// One instrument per distinct (name, kind); the list is sorted, so a
	// name change starts a new instrument.
	type key struct {
		name string
		kind promreg.Kind
	}
	instruments := make(map[key]metric.Int64Observable, len(list))

	for _, m := range list {
		k := key{name: m.Name, kind: m.Kind}
		ins, ok := instruments[k]
		if !ok {
			var err error
			switch m.Kind {
			case promreg.KindCounter:
				ins, err = meter.Int64ObservableCounter(m.Name)
			default:
				ins, err = meter.Int64ObservableGauge(m.Name)
			}
			if err != nil {
				return nil, fmt.Errorf("create observable %s %s: %w", m.Kind, m.Name, err)
			}
			instruments[k] = ins
			observables = append(observables, ins)
		}

		exporter.entries = append(exporter.entries, observed{
			metric:     m,
			instrument: ins,
			attrs:      metric.WithAttributes(toKeyValues(m.Attributes)...),
		})
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		for _, e := range exporter.entries {
			observer.ObserveInt64(e.instrument, int64(e.metric.Value()), e.attrs)
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration

	return exporter, nil
}

// Close unregisters the collection callback.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}

func toKeyValues(attrs []promreg.Attribute) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attribute.String(a.Key, a.Value))
	}
	return out
}
