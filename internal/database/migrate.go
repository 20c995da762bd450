package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

//go:embed migrations/001_initial.up.sql
var initialMigrationSQL string

// EnsureSchema creates the tenants table if it is missing and seeds the
// default demo tenant so a fresh database is immediately usable.
func (db *DB) EnsureSchema(ctx context.Context, defaultTenantSlug string) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	var exists bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_name = 'tenants'
		)
	`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check existing tables: %w", err)
	}

	if !exists {
		slog.Info("database schema missing tenants table; applying initial migration")
		if _, err := db.Pool.Exec(ctx, initialMigrationSQL); err != nil {
			return fmt.Errorf("apply initial migration: %w", err)
		}
	}

	if err := db.seedDefaultTenant(ctx, defaultTenantSlug); err != nil {
		return fmt.Errorf("seed default tenant: %w", err)
	}

	slog.Info("database schema ensured")
	return nil
}

// seedDefaultTenant inserts the deployment's default tenant idempotently.
func (db *DB) seedDefaultTenant(ctx context.Context, slug string) error {
	tag, err := db.Pool.Exec(ctx, `
		INSERT INTO tenants (id, name, slug)
		VALUES ($1, 'Demo Organizer', $2)
		ON CONFLICT (slug) DO NOTHING
	`, uuid.NewString(), slug)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		slog.Info("seeded default tenant", "slug", slug)
	}

	return nil
}
