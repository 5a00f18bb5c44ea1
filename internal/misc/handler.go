package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/recoverycoach/internal/telemetry/tracing"
	"github.com/2beens/recoverycoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the health check reaches out to.
type Pinger func(ctx context.Context) error

type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	versionInfo string
	pingers     map[string]Pinger
}

func NewHandler(versionInfo string, pingers map[string]Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		pingers:     pingers,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth pings every dependency. Any failure turns the response
// into 503 so the orchestrator stops routing to this instance.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(handler.pingers)),
	}
	for name, ping := range handler.pingers {
		if err := ping(ctx); err != nil {
			log.Errorf("health check, %s: %s", name, err)
			resp.Dependencies[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
		span.SetStatus(codes.Error, "degraded")
	}
	pkg.WriteJSONResponse(w, status, resp)
}
