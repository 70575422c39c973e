package auth

import "errors"

var (
	// ErrInvalidCredentials covers every way a login can fail: unknown
	// email, wrong role, wrong password. Callers must not be able to tell
	// which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenMalformed = errors.New("token is not a well-formed JWT")
	ErrBadSignature   = errors.New("token signature does not verify")
	ErrTokenExpired   = errors.New("token expired")
)
