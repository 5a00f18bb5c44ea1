// Package middleware instruments handlers served outside the main router,
// like the /metrics endpoint itself.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1}

type Middleware struct {
	duration *prometheus.HistogramVec
}

// New registers a handler duration histogram on reg. Nil buckets use the
// default set.
func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = defaultBuckets
	}
	return &Middleware{
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_handler_duration_seconds",
			Help:    "Duration of HTTP requests served by wrapped handlers",
			Buckets: buckets,
		}, []string{"handler", "code"}),
	}
}

func (m *Middleware) WrapHandler(name string, next http.Handler) http.Handler {
	instrumented := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.duration.
			WithLabelValues(name, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
	return otelhttp.NewHandler(instrumented, name)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
