package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/recoverycoach/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{respWriter, http.StatusOK}

			defer func(begin time.Time) {
				status := strconv.Itoa(resp.statusCode)
				metricsManager.HistogramRequestDuration.With(prometheus.Labels{
					"route":       routeName(req),
					"method":      req.Method,
					"status_code": status,
				}).Observe(time.Since(begin).Seconds())
				metricsManager.CounterRequests.With(prometheus.Labels{
					"method": req.Method,
					"status": status,
				}).Inc()
			}(time.Now())

			// handler call
			next.ServeHTTP(resp, req)
		})
	}
}

// routeName keeps the label cardinality bounded by using the route template,
// never the raw path.
func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unknown"
	}
	if name := route.GetName(); name != "" {
		return name
	}
	if tmpl, err := route.GetPathTemplate(); err == nil {
		return tmpl
	}
	return "unknown"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
