package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental_portal"

// Metrics owns the process registry. A nil *Metrics records nothing, so
// collaborators can take one unconditionally.
type Metrics struct {
	registry *prometheus.Registry

	notifications     *prometheus.CounterVec
	sweepRuns         *prometheus.CounterVec
	sweepNotified     *prometheus.CounterVec
	sweepFailed       *prometheus.CounterVec
	sweepTransitioned *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_attempts_total",
			Help:      "Notification deliveries by channel and result.",
		}, []string{"channel", "result"}),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Completed sweep runs.",
		}, []string{"sweep", "outcome"}),
		sweepNotified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_notified_total",
			Help:      "Notifications delivered by sweeps.",
		}, []string{"sweep"}),
		sweepFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_notification_failures_total",
			Help:      "Sweep notifications with at least one failed channel.",
		}, []string{"sweep"}),
		sweepTransitioned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_transitioned_total",
			Help:      "Records whose status a sweep changed.",
		}, []string{"sweep"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.notifications,
		m.sweepRuns,
		m.sweepNotified,
		m.sweepFailed,
		m.sweepTransitioned,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// NotificationAttempt records one channel delivery. result is "sent", "mock"
// or "failed".
func (m *Metrics) NotificationAttempt(channel, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(channel, result).Inc()
}

// SweepCompleted records the counters of one sweep run.
func (m *Metrics) SweepCompleted(sweep string, notified, failed, transitioned int, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.sweepRuns.WithLabelValues(sweep, outcome).Inc()
	m.sweepNotified.WithLabelValues(sweep).Add(float64(notified))
	m.sweepFailed.WithLabelValues(sweep).Add(float64(failed))
	m.sweepTransitioned.WithLabelValues(sweep).Add(float64(transitioned))
}

// Middleware counts requests by matched route template, so path parameters
// do not explode the label space.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
