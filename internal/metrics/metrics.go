package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tagtheme",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagtheme",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	tagLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagtheme",
			Name:      "tag_lookups_total",
			Help:      "Tag catalog lookups by namespace, operation and outcome",
		},
		[]string{"namespace", "op", "outcome"},
	)

	postListDegradedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tagtheme",
			Name:      "post_list_degraded_total",
			Help:      "Post list renders that fell back to an empty list after an error",
		},
		[]string{"branch"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(tagLookupsTotal)
	prometheus.MustRegister(postListDegradedTotal)
}

// ObserveTagLookup counts one tag catalog call. err decides the outcome label.
func ObserveTagLookup(namespace, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	tagLookupsTotal.WithLabelValues(namespace, op, outcome).Inc()
}

// ObserveDegraded counts a post list that degraded to empty. branch is "tagged" or "untagged".
func ObserveDegraded(branch string) {
	postListDegradedTotal.WithLabelValues(branch).Inc()
}

// Middleware records HTTP request duration and count.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ww.status)
		path := normalizePath(r.Pattern)

		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}

// normalizePath keeps label cardinality bounded: only mux patterns are used.
func normalizePath(pattern string) string {
	if pattern == "" {
		return "unknown"
	}
	return pattern
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}
