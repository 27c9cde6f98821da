package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/monish-s03/grokart-api/internal/auth"
)

// TokenVerifier is the minimal interface needed to authenticate a request.
type TokenVerifier interface {
	VerifyBearer(header string) (*auth.Claims, error)
}

// AdminVerifier is the minimal interface needed to gate the admin surface.
type AdminVerifier interface {
	VerifyAdmin(header string) (*auth.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the verified claims stored by RequireAuth or
// RequireAdmin, or nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return c
}

// RequireAuth wraps a handler with bearer-token verification. Failures
// short-circuit with 401 before the handler runs.
func RequireAuth(v TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := v.VerifyBearer(r.Header.Get("Authorization"))
		if err != nil {
			writeAuthError(w, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	}
}

// RequireAdmin wraps a handler with bearer-token verification plus the admin
// allowlist check. A verified non-admin identity gets 403, distinct from the
// 401 verification failures.
func RequireAdmin(v AdminVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := v.VerifyAdmin(r.Header.Get("Authorization"))
		if err != nil {
			writeAuthError(w, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token")
	case errors.Is(err, auth.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
	case errors.Is(err, auth.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Not authorized as admin")
	default:
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	}
}
