// Package token implements the compact signed token scheme used for
// admin sessions: three base64url segments (JSON header, JSON claims,
// HMAC-SHA256 signature) joined by dots. Tokens are never stored
// server-side; they expire by elapsed time only.
package token

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Claims is the signed payload carried by every token.
type Claims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Engine issues and verifies tokens under a shared secret. It holds no
// per-token state and is safe for concurrent use.
type Engine struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewEngine(secret string, ttl time.Duration) *Engine {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Engine{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue builds and signs a token for the given subject and role. The
// returned claims carry iat = now and exp = now + ttl.
func (e *Engine) Issue(subject string, role string) (string, Claims, error) {
	now := e.now().Unix()
	claims := Claims{
		Subject:   subject,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now + int64(e.ttl.Seconds()),
	}

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", Claims{}, err
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", Claims{}, err
	}

	signingInput := Encode(headerJSON) + "." + Encode(claimsJSON)
	signature := Sign([]byte(signingInput), e.secret)

	return signingInput + "." + signature, claims, nil
}

// Verify checks the signature and expiry of a token and returns its
// claims. The signature check strictly precedes any claim parsing so
// that forged payloads never reach callers, not even transiently.
func (e *Engine) Verify(tokenString string) (Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}

	signingInput := parts[0] + "." + parts[1]
	if err := checkSignature([]byte(signingInput), parts[2], e.secret); err != nil {
		return Claims{}, err
	}

	claimsJSON, err := Decode(parts[1])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return Claims{}, ErrMalformedToken
	}

	if claims.ExpiresAt != 0 && claims.ExpiresAt < e.now().Unix() {
		return Claims{}, ErrExpired
	}

	return claims, nil
}
