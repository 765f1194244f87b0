// Package otelexport bridges a promreg.Registry to OpenTelemetry.
//
// The exporter registers one observable instrument per distinct
// (name, kind) in the registry and reports every registered metric with
// its attribute chain through a single collection callback. It is a
// pull-path alternative to the registry's text exposition for applications
// that already run an OTel metrics pipeline.
package otelexport
