package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stackroast",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stackroast",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stackroast",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Scoring metrics
	stackScoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stackroast",
			Subsystem: "scoring",
			Name:      "stack_scores_total",
			Help:      "Total number of stack scores computed",
		},
		[]string{"badge"},
	)

	stackScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stackroast",
			Subsystem: "scoring",
			Name:      "overall_score",
			Help:      "Distribution of computed overall stack scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	percentileSampleSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stackroast",
			Subsystem: "scoring",
			Name:      "percentile_sample_size",
			Help:      "Number of recorded scores backing the percentile distribution",
		},
	)

	// Recommendation metrics
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stackroast",
			Subsystem: "recommendation",
			Name:      "served_total",
			Help:      "Total number of recommendations served",
		},
		[]string{"category", "tool"},
	)

	// Roast metrics
	roastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stackroast",
			Subsystem: "roast",
			Name:      "generated_total",
			Help:      "Total number of roasts generated",
		},
		[]string{"source"},
	)

	roastDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stackroast",
			Subsystem: "roast",
			Name:      "generation_duration_seconds",
			Help:      "Duration of roast generation in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// User metrics
	registeredUsers = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stackroast",
			Subsystem: "user",
			Name:      "registrations_total",
			Help:      "Total number of user registrations",
		},
	)

	// Database metrics
	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stackroast",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Get route pattern from chi
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordStackScore records a computed stack score
func RecordStackScore(badge string, overall int) {
	stackScoresTotal.WithLabelValues(badge).Inc()
	stackScoreDistribution.Observe(float64(overall))
}

// SetPercentileSampleSize sets the gauge for the percentile sample size
func SetPercentileSampleSize(count int) {
	percentileSampleSize.Set(float64(count))
}

// RecordRecommendation records a served recommendation
func RecordRecommendation(category, tool string) {
	recommendationsTotal.WithLabelValues(category, tool).Inc()
}

// RecordRoast records a generated roast and its duration
func RecordRoast(source string, duration time.Duration) {
	roastsTotal.WithLabelValues(source).Inc()
	roastDuration.Observe(duration.Seconds())
}

// RecordRegistration records a user registration
func RecordRegistration() {
	registeredUsers.Inc()
}

// RecordDBQuery records a database query duration
func RecordDBQuery(operation, table string, duration time.Duration) {
	dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}
