package auth

import (
	"errors"
	"strings"
)

// BlacklistChecker answers whether a token string has been revoked.
type BlacklistChecker interface {
	Contains(token string) (bool, error)
}

// ExtractToken pulls the bearer token out of a raw Authorization header
// value. An empty value counts as a missing header.
func ExtractToken(header string) (string, *AuthError) {
	if header == "" {
		return "", ErrMissingHeader
	}
	parts := strings.Fields(header)
	if len(parts) == 0 || parts[0] != "Bearer" {
		return "", ErrMalformedHeader
	}
	if len(parts) == 1 {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// Authorizer turns a raw Authorization header into an authenticated user ID
// or a tagged AuthError. It is stateless per call; the only state it
// consults is the blacklist store.
type Authorizer struct {
	codec     *TokenCodec
	blacklist BlacklistChecker
}

func NewAuthorizer(codec *TokenCodec, blacklist BlacklistChecker) *Authorizer {
	return &Authorizer{codec: codec, blacklist: blacklist}
}

// Authorize evaluates the full decision chain: header shape, blacklist
// membership, then signature and expiry.
func (a *Authorizer) Authorize(header string) (uint, *AuthError) {
	token, authErr := ExtractToken(header)
	if authErr != nil {
		return 0, authErr
	}
	return a.CheckToken(token)
}

// CheckToken decides whether an already-extracted token grants access.
// The blacklist is consulted before the token is decoded, so a revoked
// token is reported as blacklisted even when it has also expired.
func (a *Authorizer) CheckToken(token string) (uint, *AuthError) {
	blacklisted, err := a.blacklist.Contains(token)
	if err != nil {
		// Storage errors fail closed.
		return 0, ErrInvalid
	}
	if blacklisted {
		return 0, ErrBlacklisted
	}

	userID, err := a.codec.Decode(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	return userID, nil
}
