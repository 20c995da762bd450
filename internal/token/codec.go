package token

import "encoding/base64"

// Encode returns the base64url form of b with no trailing padding.
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode reverses Encode. Input containing characters outside the
// base64url alphabet fails with ErrMalformedEncoding.
func Decode(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, ErrMalformedEncoding
	}
	return b, nil
}
