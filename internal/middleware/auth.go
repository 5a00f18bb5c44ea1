package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/2beens/recoverycoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type tokenChecker interface {
	IsValid(ctx context.Context, token string) (bool, error)
}

// StaticTokenChecker accepts a single API token. An empty token rejects
// everything.
type StaticTokenChecker struct {
	token []byte
}

func NewStaticTokenChecker(token string) *StaticTokenChecker {
	return &StaticTokenChecker{
		token: []byte(token),
	}
}

func (c *StaticTokenChecker) IsValid(_ context.Context, token string) (bool, error) {
	if len(c.token) == 0 {
		return false, nil
	}
	return subtle.ConstantTimeCompare(c.token, []byte(token)) == 1, nil
}

type AuthMiddlewareHandler struct {
	tokenChecker tokenChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(tokenChecker tokenChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenChecker: tokenChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/version": true,
		},
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := bearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			valid, err := h.tokenChecker.IsValid(ctx, authToken)
			if err != nil {
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-token-err")
				span.RecordError(err)
				return
			}
			if !valid {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
