package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-flow-api/internal/model"
)

type stubResolver struct {
	tenants     map[string]model.Tenant
	defaultSlug string
}

func (s *stubResolver) Resolve(_ context.Context, slug string) (model.Tenant, error) {
	if tenant, ok := s.tenants[slug]; ok {
		return tenant, nil
	}
	return model.Tenant{}, model.ErrTenantNotFound
}

func (s *stubResolver) DefaultSlug() string {
	return s.defaultSlug
}

func newStubResolver() *stubResolver {
	return &stubResolver{
		defaultSlug: "demo-org",
		tenants: map[string]model.Tenant{
			"demo-org":  {ID: "t-1", Name: "Demo Organizer", Slug: "demo-org"},
			"other-org": {ID: "t-2", Name: "Other Organizer", Slug: "other-org"},
		},
	}
}

func TestResolveTenantFromHeader(t *testing.T) {
	mw := NewTenantMiddleware(newStubResolver())

	var captured model.Tenant
	handler := mw.ResolveTenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := TenantFromContext(r.Context())
		require.True(t, ok)
		captured = tenant
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/v1/tenants/current", nil)
	req.Header.Set("X-Tenant-Slug", "other-org")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t-2", captured.ID)
}

func TestResolveTenantDefaultSlugFallback(t *testing.T) {
	mw := NewTenantMiddleware(newStubResolver())

	var captured model.Tenant
	handler := mw.ResolveTenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = TenantFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/v1/tenants/current", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo-org", captured.Slug)
}

func TestResolveTenantUnknownSlugEchoesSlug(t *testing.T) {
	mw := NewTenantMiddleware(newStubResolver())
	handler := mw.ResolveTenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on tenant resolution failure")
	}))

	req := httptest.NewRequest("GET", "/v1/tenants/current", nil)
	req.Header.Set("X-Tenant-Slug", "ghost-org")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"TENANT_NOT_FOUND","tenantSlug":"ghost-org"}`, rec.Body.String())
}

func TestResolveTenantTrimsHeaderWhitespace(t *testing.T) {
	mw := NewTenantMiddleware(newStubResolver())
	handler := mw.ResolveTenant(okHandler(t))

	req := httptest.NewRequest("GET", "/v1/tenants/current", nil)
	req.Header.Set("X-Tenant-Slug", "  other-org  ")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
