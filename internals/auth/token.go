package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired means the token's signature checked out but its lifetime
// has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenMalformed covers bad signatures, wrong signing methods and
// structurally broken tokens.
var ErrTokenMalformed = errors.New("token malformed")

// TokenCodec issues and verifies signed auth tokens. A token carries the
// user ID as its subject and is valid for a fixed lifetime from its issue
// time. The codec is pure: the secret and lifetime are fixed at
// construction and Encode is deterministic for a given user and timestamp.
type TokenCodec struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenCodec(secret string, lifetime time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), lifetime: lifetime}
}

// Encode signs a token asserting identity userID, valid from issuedAt for
// the codec's lifetime.
func (tc *TokenCodec) Encode(userID uint, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tc.lifetime)),
	})
	return token.SignedString(tc.secret)
}

// Decode verifies signature and expiry and returns the user ID the token
// asserts. It returns ErrTokenExpired past the token's lifetime and
// ErrTokenMalformed for anything else that fails verification.
func (tc *TokenCodec) Decode(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}
	if !token.Valid {
		return 0, ErrTokenMalformed
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return uint(userID), nil
}
