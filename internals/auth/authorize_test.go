package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlacklist struct {
	tokens map[string]bool
	err    error
}

func (s *stubBlacklist) Contains(token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.tokens[token], nil
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		token   string
		wantErr *AuthError
	}{
		{name: "missing header", header: "", wantErr: ErrMissingHeader},
		{name: "wrong scheme", header: "Basic am9lOjEyMzQ1Ng==", wantErr: ErrMalformedHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrMissingToken},
		{name: "scheme with trailing space", header: "Bearer ", wantErr: ErrMissingToken},
		{name: "well formed", header: "Bearer fsadfenafad", token: "fsadfenafad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, authErr := ExtractToken(tt.header)
			if tt.wantErr != nil {
				require.NotNil(t, authErr)
				assert.Equal(t, tt.wantErr.Kind, authErr.Kind)
				assert.Equal(t, 401, authErr.Status)
				return
			}
			require.Nil(t, authErr)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthorizeValidToken(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)
	authorizer := NewAuthorizer(codec, &stubBlacklist{tokens: map[string]bool{}})

	token, err := codec.Encode(42, time.Now())
	require.NoError(t, err)

	userID, authErr := authorizer.Authorize("Bearer " + token)
	require.Nil(t, authErr)
	assert.Equal(t, uint(42), userID)
}

func TestAuthorizeBlacklistedToken(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)

	token, err := codec.Encode(42, time.Now())
	require.NoError(t, err)

	authorizer := NewAuthorizer(codec, &stubBlacklist{tokens: map[string]bool{token: true}})

	_, authErr := authorizer.Authorize("Bearer " + token)
	require.NotNil(t, authErr)
	assert.Equal(t, KindBlacklisted, authErr.Kind)
	assert.Equal(t, "Token blacklisted. Please log in again.", authErr.Message)
}

func TestAuthorizeBlacklistWinsOverExpiry(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)

	// Token is both expired and blacklisted; the blacklist check runs
	// first, so that is the failure the caller sees.
	token, err := codec.Encode(42, time.Now().Add(-10*time.Second))
	require.NoError(t, err)

	authorizer := NewAuthorizer(codec, &stubBlacklist{tokens: map[string]bool{token: true}})

	_, authErr := authorizer.Authorize("Bearer " + token)
	require.NotNil(t, authErr)
	assert.Equal(t, KindBlacklisted, authErr.Kind)
}

func TestAuthorizeExpiredToken(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)

	token, err := codec.Encode(42, time.Now().Add(-10*time.Second))
	require.NoError(t, err)

	authorizer := NewAuthorizer(codec, &stubBlacklist{tokens: map[string]bool{}})

	_, authErr := authorizer.Authorize("Bearer " + token)
	require.NotNil(t, authErr)
	assert.Equal(t, KindExpired, authErr.Kind)
	assert.Equal(t, "Signature expired, Please login again.", authErr.Message)
}

func TestAuthorizeInvalidToken(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)
	authorizer := NewAuthorizer(codec, &stubBlacklist{tokens: map[string]bool{}})

	_, authErr := authorizer.Authorize("Bearer not-a-jwt")
	require.NotNil(t, authErr)
	assert.Equal(t, KindInvalidToken, authErr.Kind)
}

func TestAuthorizeStoreErrorFailsClosed(t *testing.T) {
	codec := NewTokenCodec("testing-secret", 5*time.Second)

	token, err := codec.Encode(42, time.Now())
	require.NoError(t, err)

	authorizer := NewAuthorizer(codec, &stubBlacklist{err: errors.New("db down")})

	_, authErr := authorizer.Authorize("Bearer " + token)
	require.NotNil(t, authErr)
	assert.Equal(t, KindInvalidToken, authErr.Kind)
}
