package model

import "errors"

var (
	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("email and password are required")

	// Tenant related errors
	ErrTenantNotFound = errors.New("tenant not found")
)
