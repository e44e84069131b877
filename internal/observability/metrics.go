package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	dashboardRequestsTotal  *prometheus.CounterVec
	dashboardLatencySeconds *prometheus.HistogramVec
	dashboardErrorsTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used for dashboard observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		dashboardRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of dashboard API requests served.",
		}, []string{"method", "route", "status"})

		dashboardLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_latency_seconds",
			Help:    "Latency distribution for dashboard API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		dashboardErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_errors_total",
			Help: "Total number of error responses returned by dashboard endpoints.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(dashboardRequestsTotal, dashboardLatencySeconds, dashboardErrorsTotal)
	})
}

// DashboardRequests exposes the counter for dashboard requests.
func DashboardRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return dashboardRequestsTotal
}

// DashboardLatency exposes the latency histogram for dashboard requests.
func DashboardLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return dashboardLatencySeconds
}

// DashboardErrors exposes the counter for dashboard error responses.
func DashboardErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return dashboardErrorsTotal
}
