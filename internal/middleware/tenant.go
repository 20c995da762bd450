package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"ticket-flow-api/internal/model"
	"ticket-flow-api/internal/observability"
	"ticket-flow-api/pkg/apierror"
)

const tenantSlugHeader = "X-Tenant-Slug"

type tenantResolver interface {
	Resolve(ctx context.Context, slug string) (model.Tenant, error)
	DefaultSlug() string
}

const tenantContextKey contextKey = "tenant"

// TenantMiddleware is the tenant-resolution stage of the request gate.
// The slug is taken from the X-Tenant-Slug header as asserted by the
// caller; there is no cross-check against the authenticated identity's
// tenant memberships, so any valid admin token can address any existing
// tenant. Unlike the bearer stage, a failed lookup echoes the offending
// slug back to the client.
type TenantMiddleware struct {
	resolver tenantResolver
}

func NewTenantMiddleware(resolver tenantResolver) *TenantMiddleware {
	return &TenantMiddleware{resolver: resolver}
}

func (m *TenantMiddleware) ResolveTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(r.Header.Get(tenantSlugHeader))
		if slug == "" {
			slug = m.resolver.DefaultSlug()
		}

		tenant, err := m.resolver.Resolve(r.Context(), slug)
		if err != nil {
			observability.TenantLookupsTotal.WithLabelValues("miss").Inc()
			if !errors.Is(err, model.ErrTenantNotFound) {
				// Store failure rather than a miss; still terminal.
				slog.Error("tenant lookup failed", "slug", slug, "error", err)
			}
			apiErr := apierror.New("TENANT_NOT_FOUND", http.StatusUnauthorized)
			apiErr.TenantSlug = slug
			writeAPIError(w, apiErr)
			return
		}

		observability.TenantLookupsTotal.WithLabelValues("hit").Inc()
		ctx := context.WithValue(r.Context(), tenantContextKey, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TenantFromContext(ctx context.Context) (model.Tenant, bool) {
	tenant, ok := ctx.Value(tenantContextKey).(model.Tenant)
	return tenant, ok
}
