package token

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Sign computes HMAC-SHA256 over message under secret and returns the
// digest base64url-encoded. Deterministic: identical inputs always
// produce the identical signature.
func Sign(message []byte, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return Encode(mac.Sum(nil))
}

// checkSignature recomputes the signature over message and compares it
// to the supplied one. hmac.Equal is constant-time over the content but
// returns immediately on a length mismatch, so signature length is
// observable via timing. Length is not secret for HS256 (always 32
// bytes), so this is tolerated rather than worked around.
func checkSignature(message []byte, signature string, secret []byte) error {
	got, err := Decode(signature)
	if err != nil {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrBadSignature
	}

	return nil
}
