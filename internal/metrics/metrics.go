package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Database metrics
	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Business metrics
	inquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total number of submitted inquiries and enquiries",
		},
		[]string{"kind"}, // inquiry, site_visit, construction, general
	)

	agentLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_logins_total",
			Help: "Total number of agent login attempts",
		},
		[]string{"status"}, // success, failure
	)

	otpGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "otp_generated_total",
			Help: "Total number of OTP codes generated",
		},
	)

	otpVerifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_verified_total",
			Help: "Total number of OTP verifications",
		},
		[]string{"status"}, // success, failure
	)

	emailsIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_ingested_total",
			Help: "Total number of emails stored from the inbox",
		},
	)
)

// GinMiddleware records request count and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// Use the route template so path params don't explode cardinality.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, statusCode).Observe(time.Since(start).Seconds())
	}
}

// RecordInquiry records a submitted inquiry or enquiry by kind.
func RecordInquiry(kind string) {
	inquiriesTotal.WithLabelValues(kind).Inc()
}

// RecordAgentLogin records an agent password login attempt.
func RecordAgentLogin(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	agentLoginsTotal.WithLabelValues(status).Inc()
}

// RecordOTPGenerated records OTP generation.
func RecordOTPGenerated() {
	otpGeneratedTotal.Inc()
}

// RecordOTPVerified records an OTP verification attempt.
func RecordOTPVerified(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	otpVerifiedTotal.WithLabelValues(status).Inc()
}

// RecordEmailIngested records a stored inbox message.
func RecordEmailIngested() {
	emailsIngestedTotal.Inc()
}

// UpdateDBConnections updates database connection gauges.
func UpdateDBConnections(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}
