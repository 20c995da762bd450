package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)

	tokenString, issued, err := engine.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)
	assert.Len(t, strings.Split(tokenString, "."), 3)

	claims, err := engine.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, issued, claims)
	assert.Equal(t, "demo@ticket-flow.local", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, claims.IssuedAt+3600, claims.ExpiresAt)
}

func TestIssueDefaultTTL(t *testing.T) {
	engine := NewEngine(testSecret, 0)

	_, claims, err := engine.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)
	assert.Equal(t, claims.IssuedAt+86400, claims.ExpiresAt)
}

func TestSignIsDeterministic(t *testing.T) {
	message := []byte("header.claims")
	secret := []byte(testSecret)

	assert.Equal(t, Sign(message, secret), Sign(message, secret))
	assert.NotEqual(t, Sign(message, secret), Sign(message, []byte("other-secret")))
	assert.NotEqual(t, Sign(message, secret), Sign([]byte("header.claimz"), secret))
}

func TestVerifyRejectsWrongSegmentCount(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)

	tokenString, _, err := engine.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)

	for _, input := range []string{
		"",
		"onesegment",
		"two.segments",
		tokenString + ".extra",
		"a.b.c.d",
	} {
		_, verifyErr := engine.Verify(input)
		assert.ErrorIs(t, verifyErr, ErrMalformedToken, "input %q", input)
	}
}

func TestVerifyRejectsEverySingleBitFlip(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)

	tokenString, _, err := engine.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)

	raw := []byte(tokenString)
	for i := range raw {
		for bit := uint(0); bit < 8; bit++ {
			corrupted := make([]byte, len(raw))
			copy(corrupted, raw)
			corrupted[i] ^= 1 << bit

			_, verifyErr := engine.Verify(string(corrupted))
			require.Error(t, verifyErr, "flip byte %d bit %d", i, bit)
			require.True(t,
				verifyErr == ErrBadSignature || verifyErr == ErrMalformedToken,
				"flip byte %d bit %d: unexpected error %v", i, bit, verifyErr)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewEngine(testSecret, time.Hour)
	verifier := NewEngine("a-different-secret", time.Hour)

	tokenString, _, err := issuer.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)

	_, verifyErr := verifier.Verify(tokenString)
	assert.ErrorIs(t, verifyErr, ErrBadSignature)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)
	engine.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	// Issued two hours in the past with a one hour TTL; correctly
	// signed but past exp by the time it is verified.
	tokenString, _, err := engine.Issue("demo@ticket-flow.local", "admin")
	require.NoError(t, err)

	engine.now = time.Now
	_, verifyErr := engine.Verify(tokenString)
	assert.ErrorIs(t, verifyErr, ErrExpired)
}

func TestVerifySignatureCheckPrecedesClaimParsing(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)

	// Garbage claims signed with the right secret: the signature is
	// accepted, then parsing fails.
	signingInput := Encode([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + Encode([]byte("not json"))
	signed := signingInput + "." + Sign([]byte(signingInput), []byte(testSecret))

	_, err := engine.Verify(signed)
	assert.ErrorIs(t, err, ErrMalformedToken)

	// The same garbage claims with a bogus signature must be reported
	// as a signature failure, proving the check order.
	forged := signingInput + "." + Sign([]byte(signingInput), []byte("attacker-secret"))

	_, err = engine.Verify(forged)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyTokenWithoutExpNeverExpires(t *testing.T) {
	engine := NewEngine(testSecret, time.Hour)

	signingInput := Encode([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		Encode([]byte(`{"sub":"demo@ticket-flow.local","role":"admin","iat":1}`))
	signed := signingInput + "." + Sign([]byte(signingInput), []byte(testSecret))

	claims, err := engine.Verify(signed)
	require.NoError(t, err)
	assert.Zero(t, claims.ExpiresAt)
}
