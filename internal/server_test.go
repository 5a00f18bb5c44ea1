package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/recoverycoach/internal/config"
	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/engine"
	"github.com/2beens/recoverycoach/internal/records"
	"github.com/2beens/recoverycoach/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAll struct {
	calls int
}

func (a *allowAll) Allow(_ context.Context, _ string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	a.calls++
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: limit.Burst - 1}, nil
}

func newTestServer(t *testing.T) (*Server, *allowAll) {
	t.Helper()

	repo := records.NewMemRepo()
	require.NoError(t, repo.SaveProfile(context.Background(), domain.UserProfile{
		UserID:        "u1",
		Age:           35,
		HeightCm:      172,
		WeightKg:      70,
		ActivityLevel: domain.ActivityLightlyActive,
		Goal:          domain.GoalMaintenance,
	}))
	core, err := engine.NewCore(engine.DefaultCoreConfig())
	require.NoError(t, err)

	limiter := &allowAll{}
	return &Server{
		config: &config.Config{
			AllowedOrigins:  []string{"http://localhost:3000"},
			RateLimitPerMin: 60,
		},
		versionInfo:    "test",
		apiToken:       "test-token",
		rateLimiter:    limiter,
		engine:         engine.New(engine.Params{Core: core, Records: repo}),
		metricsManager: metrics.NewTestManager(),
	}, limiter
}

func TestServer_routerSetup(t *testing.T) {
	server, limiter := newTestServer(t)
	router := server.routerSetup()

	testCases := []struct {
		name           string
		method         string
		path           string
		token          string
		origin         string
		expectedStatus int
	}{
		{"Root", "GET", "/", "", "", http.StatusOK},
		{"Version", "GET", "/version", "", "", http.StatusOK},
		{"NoToken", "GET", "/users/u1/recovery", "", "", http.StatusUnauthorized},
		{"WrongToken", "GET", "/users/u1/recovery", "nope", "", http.StatusUnauthorized},
		{"Recovery", "GET", "/users/u1/recovery", "test-token", "", http.StatusOK},
		{"Nutrition", "GET", "/users/u1/nutrition", "test-token", "http://localhost:3000", http.StatusOK},
		{"UnknownUser", "GET", "/users/u2/insights", "test-token", "", http.StatusNotFound},
		{"ForeignOrigin", "GET", "/users/u1/recovery", "test-token", "https://evil.example", http.StatusForbidden},
		{"Preflight", "OPTIONS", "/users/u1/recovery", "", "http://localhost:3000", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}

	// everything past auth: root, version and the three authorized user calls
	assert.Equal(t, 5, limiter.calls)
}

func TestServer_connStateMetrics(t *testing.T) {
	server := &Server{
		metricsManager: metrics.NewTestManager(),
	}

	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateActive)
	server.connStateMetrics(nil, http.StateClosed)

	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.GaugeRequests))
}
