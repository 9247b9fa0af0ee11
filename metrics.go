// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package btcrpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errorKindTransport   = "transport"
	errorKindApplication = "application"
)

// Metrics holds the Prometheus collectors updated by the dispatch path.
// A nil *Metrics records nothing.
type Metrics struct {
	// Requests counts round trips, including retried ones.
	Requests *prometheus.CounterVec
	// BusyRetries counts attempts rejected because the node was starting up.
	BusyRetries *prometheus.CounterVec
	// Errors counts failed round trips by kind: transport or application.
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the collectors with registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "btcrpc_requests_total",
			Help: "Total number of JSON-RPC round trips",
		}, []string{"method"}),
		BusyRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "btcrpc_busy_retries_total",
			Help: "Total number of attempts retried because the node was still starting",
		}, []string{"method"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "btcrpc_errors_total",
			Help: "Total number of failed round trips",
		}, []string{"method", "kind"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "btcrpc_request_duration_seconds",
			Help:    "Duration of JSON-RPC round trips",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *Metrics) observe(method string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method).Inc()
	m.Duration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) busyRetry(method string) {
	if m == nil {
		return
	}
	m.BusyRetries.WithLabelValues(method).Inc()
}

func (m *Metrics) failed(method, kind string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(method, kind).Inc()
}
