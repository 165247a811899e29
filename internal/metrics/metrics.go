// Package metrics provides Prometheus instrumentation for the escrow service.
package metrics

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escrow"

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// TransactionTransitionsTotal counts escrow status changes by target status.
	TransactionTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_transitions_total",
			Help:      "Escrow transaction status transitions by target status.",
		},
		[]string{"status"},
	)

	// RuleViolationsTotal counts rejected operations by reason code.
	RuleViolationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_violations_total",
			Help:      "Operations rejected by a business rule, by reason code.",
		},
		[]string{"reason"},
	)

	DisputesOpenedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disputes_opened_total",
		Help:      "Disputes opened by priority.",
	}, []string{"priority"})

	DisputesResolvedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disputes_resolved_total",
		Help:      "Disputes resolved by resolution type.",
	}, []string{"resolution"})

	// UnassignedDisputes tracks disputes still waiting for a moderator after the last assignment run.
	UnassignedDisputes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "unassigned_disputes",
		Help:      "Active disputes without a moderator.",
	})

	TransactionsExpiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_expired_total",
		Help:      "Created transactions cancelled after the timeout.",
	})

	DisputeResolutionHours = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispute_resolution_hours",
		Help:      "Time from dispute creation to resolution in hours.",
		Buckets:   []float64{1, 4, 12, 24, 48, 72, 168, 336},
	})

	TrustCacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trust_cache_lookups_total",
		Help:      "Trust snapshot cache lookups by result.",
	}, []string{"result"})

	DBTotalConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_total_connections",
		Help: "Number of connections in the pool.",
	})
	DBIdleConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_idle_connections",
		Help: "Number of idle pool connections.",
	})
	DBAcquiredConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_acquired_connections",
		Help: "Number of pool connections currently in use.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		TransactionTransitionsTotal,
		RuleViolationsTotal,
		DisputesOpenedTotal,
		DisputesResolvedTotal,
		UnassignedDisputes,
		TransactionsExpiredTotal,
		DisputeResolutionHours,
		TrustCacheLookupsTotal,
		DBTotalConns,
		DBIdleConns,
		DBAcquiredConns,
	)
}

// StartPoolStatsCollector periodically samples pgxpool stats into gauges. Exits when ctx is done.
func StartPoolStatsCollector(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := pool.Stat()
			DBTotalConns.Set(float64(stats.TotalConns()))
			DBIdleConns.Set(float64(stats.IdleConns()))
			DBAcquiredConns.Set(float64(stats.AcquiredConns()))
		}
	}
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(), // route pattern keeps cardinality bounded
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus metrics HTTP handler for /metrics endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
