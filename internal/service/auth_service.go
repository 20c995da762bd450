package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ticket-flow-api/internal/model"
	"ticket-flow-api/internal/token"
)

// AuthService checks the env-supplied admin credential and issues
// session tokens. The credential is read once at startup and never
// persisted; there is no user table.
type AuthService struct {
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
	engine            *token.Engine
}

func NewAuthService(adminEmail string, adminPassword string, adminPasswordHash string, engine *token.Engine) *AuthService {
	return &AuthService{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
		engine:            engine,
	}
}

// Login validates the admin credential and returns an access token with
// role "admin". Unknown email and wrong password fail identically so
// the response gives no enumeration signal.
func (s *AuthService) Login(email string, password string) (model.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.LoginResponse{}, model.ErrMissingCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	if !emailOK || !s.passwordMatches(password) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	accessToken, _, err := s.engine.Issue(email, "admin")
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		AccessToken: accessToken,
		User:        model.AuthUser{Email: email, Role: "admin"},
	}, nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}

// Verify delegates to the token engine; the middleware consumes this
// through its small verifier interface.
func (s *AuthService) Verify(tokenString string) (token.Claims, error) {
	return s.engine.Verify(tokenString)
}
