package handler

import (
	"net/http"

	"ticket-flow-api/internal/middleware"
)

type TenantHandler struct{}

func NewTenantHandler() *TenantHandler {
	return &TenantHandler{}
}

// Current returns the tenant record resolved by the request gate.
func (h *TenantHandler) Current(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "tenant context missing")
		return
	}

	writeJSON(w, http.StatusOK, tenant)
}
