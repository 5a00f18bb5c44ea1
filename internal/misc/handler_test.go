package misc_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/recoverycoach/internal/misc"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(pingers map[string]misc.Pinger) *mux.Router {
	r := mux.NewRouter()
	misc.NewHandler("v1.2.3", pingers).SetupRoutes(r)
	return r
}

func TestHandler_RootAndVersion(t *testing.T) {
	r := newRouter(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestHandler_Health(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	r := newRouter(map[string]misc.Pinger{"postgres": ok, "redis": ok})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp misc.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, resp.Dependencies)

	r = newRouter(map[string]misc.Pinger{"postgres": ok, "redis": down})
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"])
}
