package auth

import "net/http"

// Kind tags the reason an authorization attempt failed.
type Kind int

const (
	KindMissingHeader Kind = iota
	KindMalformedHeader
	KindMissingToken
	KindBlacklisted
	KindExpired
	KindInvalidToken
)

// AuthError is the tagged failure result of an authorization decision.
// Message is the client-facing text; Status the HTTP status to respond with.
type AuthError struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *AuthError) Error() string {
	return e.Message
}

var (
	ErrMissingHeader   = &AuthError{KindMissingHeader, "Authorization header is expected.", http.StatusUnauthorized}
	ErrMalformedHeader = &AuthError{KindMalformedHeader, `Authorization header must start with "Bearer".`, http.StatusUnauthorized}
	ErrMissingToken    = &AuthError{KindMissingToken, "Token not found.", http.StatusUnauthorized}
	ErrBlacklisted     = &AuthError{KindBlacklisted, "Token blacklisted. Please log in again.", http.StatusUnauthorized}
	ErrExpired         = &AuthError{KindExpired, "Signature expired, Please login again.", http.StatusUnauthorized}
	ErrInvalid         = &AuthError{KindInvalidToken, "Invalid token. Please log in again.", http.StatusUnauthorized}
)
