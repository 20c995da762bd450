package service

import (
	"context"
	"strings"

	"ticket-flow-api/internal/model"
)

type tenantStore interface {
	FindBySlug(ctx context.Context, slug string) (model.Tenant, error)
}

// TenantService resolves inbound tenant slugs. An empty slug falls back
// to the configured default — a deployment convenience, not a security
// boundary: the slug is entirely self-asserted by the caller and is not
// cross-checked against the authenticated identity's memberships.
type TenantService struct {
	store       tenantStore
	defaultSlug string
}

func NewTenantService(store tenantStore, defaultSlug string) *TenantService {
	return &TenantService{store: store, defaultSlug: defaultSlug}
}

// DefaultSlug returns the fallback slug used when no header is sent.
func (s *TenantService) DefaultSlug() string {
	return s.defaultSlug
}

func (s *TenantService) Resolve(ctx context.Context, slug string) (model.Tenant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = s.defaultSlug
	}

	return s.store.FindBySlug(ctx, slug)
}
