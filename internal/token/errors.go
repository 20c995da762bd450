package token

import "errors"

var (
	ErrMalformedEncoding = errors.New("malformed base64url encoding")
	ErrMalformedToken    = errors.New("malformed token")
	ErrBadSignature      = errors.New("bad token signature")
	ErrExpired           = errors.New("token expired")
)
