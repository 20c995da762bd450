package apierror

import "fmt"

// APIError is the machine-readable error body returned by the request
// gate and the /v1 handlers. It marshals to the wire shape the admin
// dashboard expects: {"error": CODE} plus optional context fields.
type APIError struct {
	Code       string `json:"error"`
	TenantSlug string `json:"tenantSlug,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.TenantSlug != "" {
		return fmt.Sprintf("%s: tenant %q", e.Code, e.TenantSlug)
	}

	return e.Code
}

func New(code string, status int) *APIError {
	return &APIError{Code: code, HTTPStatus: status}
}
