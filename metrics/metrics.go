// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors recorded while building
// modification catalogues and exports them in the node-exporter textfile
// format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all collectors for catalogue construction.
type Metrics struct {
	BuildDuration *prometheus.HistogramVec
	Combinations  *prometheus.GaugeVec
	Transitions   *prometheus.GaugeVec
	BuildFailures *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		BuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "modcat_catalogue_build_duration_seconds",
				Help:    "Catalogue construction time in seconds, by profile.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"profile"},
		),
		Combinations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "modcat_catalogue_combinations",
				Help: "Number of catalogued modification combinations, by profile.",
			},
			[]string{"profile"},
		),
		Transitions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "modcat_catalogue_transitions",
				Help: "Number of precomputed transitions, by profile.",
			},
			[]string{"profile"},
		),
		BuildFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modcat_catalogue_build_failures_total",
				Help: "Catalogue constructions that returned an error, by profile.",
			},
			[]string{"profile"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.BuildDuration,
		m.Combinations,
		m.Transitions,
		m.BuildFailures,
	)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBuild records a successful construction.
func (m *Metrics) ObserveBuild(profile string, took time.Duration, combinations, transitions int) {
	m.BuildDuration.WithLabelValues(profile).Observe(took.Seconds())
	m.Combinations.WithLabelValues(profile).Set(float64(combinations))
	m.Transitions.WithLabelValues(profile).Set(float64(transitions))
}

// ObserveFailure records a failed construction.
func (m *Metrics) ObserveFailure(profile string) {
	m.BuildFailures.WithLabelValues(profile).Inc()
}

// WriteTextfile atomically writes every metric to path for the node
// exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
