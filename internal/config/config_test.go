package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "demo1234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, "demo@ticket-flow.local", cfg.AdminEmail)
	assert.Equal(t, "demo-org", cfg.DefaultTenantSlug)
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadLowercasesAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "demo1234")
	t.Setenv("ADMIN_EMAIL", "Admin@Example.COM")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			ServerPort:        "8000",
			DatabaseURL:       "postgres://localhost/ticketflow",
			JWTSecret:         "secret",
			JWTAccessTTL:      time.Hour,
			RequestTimeout:    time.Second,
			AdminEmail:        "demo@ticket-flow.local",
			AdminPassword:     "demo1234",
			DefaultTenantSlug: "demo-org",
		}
	}

	valid := base()
	require.NoError(t, valid.Validate())

	mutations := []func(*Config){
		func(c *Config) { c.ServerPort = "" },
		func(c *Config) { c.DatabaseURL = " " },
		func(c *Config) { c.JWTSecret = "" },
		func(c *Config) { c.AdminEmail = "" },
		func(c *Config) { c.AdminPassword = ""; c.AdminPasswordHash = "" },
		func(c *Config) { c.DefaultTenantSlug = "" },
		func(c *Config) { c.JWTAccessTTL = 0 },
		func(c *Config) { c.RequestTimeout = -time.Second },
	}

	for i, mutate := range mutations {
		cfg := base()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), "mutation %d", i)
	}
}
