package model

import "time"

// Tenant is an organizer account. External tooling owns creation; the
// API only ever reads tenants by slug.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
