package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/recoverycoach/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// requestFields describes the request for log entries. user_id is only set
// on the /users/{id} routes.
func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		fields["route"] = route.GetName()
	}
	if userID := mux.Vars(r)["id"]; userID != "" {
		fields["user_id"] = userID
	}
	return fields
}

// PanicRecovery turns a handler panic into a 500 and logs it with the stack
// and the user the request was for.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.WithFields(requestFields(r)).
					WithField("stack", string(debug.Stack())).
					Errorf("panic serving request: %v", rec)
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
