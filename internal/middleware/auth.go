package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ticket-flow-api/internal/observability"
	"ticket-flow-api/internal/token"
	"ticket-flow-api/pkg/apierror"
)

type tokenVerifier interface {
	Verify(tokenString string) (token.Claims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth is the bearer stage of the request gate. Every rejection
// collapses to a bare UNAUTHORIZED body: which verification step failed
// (prefix, signature, parsing, expiry) is never echoed to the client.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			observability.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
			writeAPIError(w, apierror.New("UNAUTHORIZED", http.StatusUnauthorized))
			return
		}

		tokenString := strings.TrimSpace(header[7:])
		if tokenString == "" {
			observability.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
			writeAPIError(w, apierror.New("UNAUTHORIZED", http.StatusUnauthorized))
			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			observability.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
			writeAPIError(w, apierror.New("UNAUTHORIZED", http.StatusUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(token.Claims)
	return claims, ok
}

func writeAPIError(w http.ResponseWriter, apiErr *apierror.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(apiErr)
}
