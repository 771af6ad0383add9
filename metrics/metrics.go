// SPDX-License-Identifier: EPL-2.0

// Package metrics exports session lifecycle events to Prometheus.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ik5/namhost/session"
)

var _ session.Observer = (*Metrics)(nil)

// Metrics is a session.Observer backed by its own Prometheus registry.
// Every method only touches atomics, so it is safe to use from the audio
// path.
type Metrics struct {
	registry *prometheus.Registry
	live     atomic.Int64

	ModelLoadsTotal        prometheus.Counter
	ModelLoadFailuresTotal prometheus.Counter
	ModelsDestroyedTotal   prometheus.Counter
	BufferGrowthsTotal     prometheus.Counter

	ModelsLive         prometheus.Gauge
	MaxBufferSize      prometheus.Gauge
	ExpectedSampleRate prometheus.Gauge
}

// New creates and registers all metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		ModelLoadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namhost_model_loads_total",
			Help: "Total number of models loaded",
		}),
		ModelLoadFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namhost_model_load_failures_total",
			Help: "Total number of failed model loads",
		}),
		ModelsDestroyedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namhost_models_destroyed_total",
			Help: "Total number of models released",
		}),
		BufferGrowthsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "namhost_buffer_growths_total",
			Help: "Total number of times the maximum buffer size was raised",
		}),

		ModelsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "namhost_models_live",
			Help: "Models currently loaded",
		}),
		MaxBufferSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "namhost_max_buffer_size",
			Help: "Largest block size the loaded model is prepared for",
		}),
		ExpectedSampleRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "namhost_expected_sample_rate_hz",
			Help: "Sample rate the loaded model expects, 0 when none is loaded",
		}),
	}

	registry.MustRegister(
		m.ModelLoadsTotal,
		m.ModelLoadFailuresTotal,
		m.ModelsDestroyedTotal,
		m.BufferGrowthsTotal,
		m.ModelsLive,
		m.MaxBufferSize,
		m.ExpectedSampleRate,
	)

	return m
}

// Registry returns the registry, for callers that gather or extend it.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ModelLoaded counts the load and records the model's rate.
func (m *Metrics) ModelLoaded(_ string, sampleRate float64) {
	m.ModelLoadsTotal.Inc()
	m.ModelsLive.Set(float64(m.live.Add(1)))
	m.ExpectedSampleRate.Set(sampleRate)
}

// ModelLoadFailed counts a rejected load.
func (m *Metrics) ModelLoadFailed(string, error) {
	m.ModelLoadFailuresTotal.Inc()
}

// ModelDestroyed clears the expected rate once no model is left.
func (m *Metrics) ModelDestroyed(string) {
	m.ModelsDestroyedTotal.Inc()
	live := m.live.Add(-1)
	m.ModelsLive.Set(float64(live))
	if live <= 0 {
		m.ExpectedSampleRate.Set(0)
	}
}

// BufferResized records the new size. Only increases count as growth.
func (m *Metrics) BufferResized(from, to int) {
	if to > from {
		m.BufferGrowthsTotal.Inc()
	}
	m.MaxBufferSize.Set(float64(to))
}

// Watch sets the buffer size gauge to s's current watermark. Sessions only
// report changes, so call it once after attaching m.
func (m *Metrics) Watch(s interface{ MaximumBufferSize() int }) {
	m.MaxBufferSize.Set(float64(s.MaximumBufferSize()))
}
