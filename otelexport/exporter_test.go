package otelexport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/ygrebnov/promreg"
)

type bridgeMet struct {
	requests promreg.Counter
	inFlight promreg.Gauge
}

func newTestRegistry(t *testing.T) (*promreg.Registry, *bridgeMet) {
	t.Helper()

	r := promreg.New(promreg.WithBaseAttribute("env", "test"))
	m := &bridgeMet{}
	promreg.RegisterWith(r, m, func(m *bridgeMet, reg *promreg.Registration) {
		reg.NamePrefix("bridge")
		reg.Count("requests", &m.requests)
		reg.Gauge("in_flight", &m.inFlight)
	})

	return r, m
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.NotEmpty(t, rm.ScopeMetrics)
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestExporter_CollectsLiveValues(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("promreg-test")

	r, m := newTestRegistry(t)
	m.requests.Add(4)
	m.inFlight.Set(2)

	exp, err := New(meter, r)
	require.NoError(t, err)
	defer func() { require.NoError(t, exp.Close()) }()

	rm := collect(t, reader)

	counter, ok := findMetric(rm, "bridge_requests")
	require.True(t, ok)
	sum, ok := counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(4), sum.DataPoints[0].Value)

	gauge, ok := findMetric(rm, "bridge_in_flight")
	require.True(t, ok)
	g, ok := gauge.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, g.DataPoints, 1)
	assert.Equal(t, int64(2), g.DataPoints[0].Value)
	// base attribute travels with the data point
	assert.Equal(t, 1, g.DataPoints[0].Attributes.Len())

	// a later collect sees updated values through the live references
	m.requests.Inc()
	rm = collect(t, reader)
	counter, ok = findMetric(rm, "bridge_requests")
	require.True(t, ok)
	sum, ok = counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(5), sum.DataPoints[0].Value)
}

func TestExporter_SameNameDifferentAttributes(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("promreg-test")

	r := promreg.New()
	first := &bridgeMet{}
	second := &bridgeMet{}
	register := func(m *bridgeMet, id string) {
		promreg.RegisterWith(r, m, func(m *bridgeMet, reg *promreg.Registration) {
			reg.Group("worker").Count("processed", &m.requests).Attr("id", id).Done()
		})
	}
	register(first, "0")
	register(second, "1")
	first.requests.Add(3)

	exp, err := New(meter, r)
	require.NoError(t, err)
	defer func() { require.NoError(t, exp.Close()) }()

	rm := collect(t, reader)
	counter, ok := findMetric(rm, "worker_processed")
	require.True(t, ok)
	sum, ok := counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	// one instrument, one data point per attribute set
	assert.Len(t, sum.DataPoints, 2)
}

func TestExporter_RejectsNilArguments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("promreg-test")

	_, err := New(nil, promreg.New())
	assert.ErrorIs(t, err, ErrNilMeter)

	_, err = New(meter, nil)
	assert.ErrorIs(t, err, ErrNilRegistry)
}

func TestExporter_CloseIsSafeOnNil(t *testing.T) {
	var exp *Exporter
	assert.NoError(t, exp.Close())
}
