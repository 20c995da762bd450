//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ticket-flow-api/internal/config"
	"ticket-flow-api/internal/handler"
	"ticket-flow-api/internal/middleware"
	"ticket-flow-api/internal/model"
	"ticket-flow-api/internal/router"
	"ticket-flow-api/internal/service"
	"ticket-flow-api/internal/token"
)

const (
	testSecret   = "integration-test-secret"
	testEmail    = "demo@ticket-flow.local"
	testPassword = "demo1234"
)

// memoryTenantStore stands in for the tenants table so the gate can be
// exercised without PostgreSQL.
type memoryTenantStore struct {
	tenants map[string]model.Tenant
}

func (m *memoryTenantStore) FindBySlug(_ context.Context, slug string) (model.Tenant, error) {
	if tenant, ok := m.tenants[slug]; ok {
		return tenant, nil
	}
	return model.Tenant{}, model.ErrTenantNotFound
}

func newTestServer(t *testing.T, ttl time.Duration) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:        "8000",
		RequestTimeout:    30 * time.Second,
		JWTSecret:         testSecret,
		JWTAccessTTL:      ttl,
		AdminEmail:        testEmail,
		AdminPassword:     testPassword,
		DefaultTenantSlug: "demo-org",
		CORSOrigins:       []string{"*"},
		RateLimitRPM:      1000,
		AuthRateLimitRPM:  1000,
	}

	store := &memoryTenantStore{tenants: map[string]model.Tenant{
		"demo-org":  {ID: "t-1", Name: "Demo Organizer", Slug: "demo-org", CreatedAt: time.Now().UTC()},
		"other-org": {ID: "t-2", Name: "Other Organizer", Slug: "other-org", CreatedAt: time.Now().UTC()},
	}}

	engine := token.NewEngine(cfg.JWTSecret, cfg.JWTAccessTTL)
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash, engine)
	tenantService := service.NewTenantService(store, cfg.DefaultTenantSlug)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	tenantMiddleware := middleware.NewTenantMiddleware(tenantService)
	authHandler := handler.NewAuthHandler(authService)
	tenantHandler := handler.NewTenantHandler()

	server := httptest.NewServer(router.New(cfg, authMiddleware, tenantMiddleware, authHandler, tenantHandler))
	t.Cleanup(server.Close)

	return server
}

func login(t *testing.T, server *httptest.Server, email string, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func loginForToken(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp := login(t, server, testEmail, testPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed model.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.NotEmpty(t, parsed.AccessToken)

	return parsed.AccessToken
}

func doGet(t *testing.T, url string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
