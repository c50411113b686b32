package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	DBQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brainstore_db_queries_total",
			Help: "Total number of repository round trips by operation and outcome",
		},
		[]string{"op", "status"},
	)
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brainstore_db_query_duration_seconds",
			Help:    "Repository round trip duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"op"},
	)

	// VectorsCollectedTotal counts vector rows removed because no brain references them anymore.
	VectorsCollectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brainstore_vectors_collected_total",
			Help: "Total number of orphaned vectors deleted",
		},
		[]string{"source"},
	)
	FilesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "brainstore_files_deleted_total",
			Help: "Total number of files removed from brains",
		},
	)
)

var registerOnce sync.Once

// InitMetrics registers all collectors with the default registry. Safe to call repeatedly.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(DBQueriesTotal)
		prometheus.MustRegister(DBQueryDuration)
		prometheus.MustRegister(VectorsCollectedTotal)
		prometheus.MustRegister(FilesDeletedTotal)
	})
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, http.StatusText(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(dur)
	})
}

// ObserveQuery records one repository round trip started at start.
func ObserveQuery(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	DBQueriesTotal.WithLabelValues(op, status).Inc()
	DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// CollectVectors records n orphaned vectors deleted by source ("file_delete" or "sweeper").
func CollectVectors(source string, n int) {
	if n <= 0 {
		return
	}
	VectorsCollectedTotal.WithLabelValues(source).Add(float64(n))
}

// DeleteFile records one file removed from a brain.
func DeleteFile() { FilesDeletedTotal.Inc() }
