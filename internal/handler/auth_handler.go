package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ticket-flow-api/internal/middleware"
	"ticket-flow-api/internal/model"
	"ticket-flow-api/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login checks the admin credential and issues an access token. The
// failure message is identical for unknown email and wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, model.ErrMissingCredentials) {
			writeMessage(w, http.StatusBadRequest, "email and password are required")
			return
		}
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Me returns the authenticated identity as attached by the request gate.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":   model.AuthUser{Email: claims.Subject, Role: claims.Role},
		"claims": claims,
	})
}
