package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_DistinctSubjects(t *testing.T) {
	j := NewJWT("secret")
	a, b := uuid.New(), uuid.New()

	tokenA, err := j.GenerateAccessToken(a)
	require.NoError(t, err)
	tokenB, err := j.GenerateAccessToken(b)
	require.NoError(t, err)

	gotA, err := j.ParseAccessToken(tokenA)
	require.NoError(t, err)
	gotB, err := j.ParseAccessToken(tokenB)
	require.NoError(t, err)

	assert.Equal(t, a, gotA)
	assert.Equal(t, b, gotB)
	assert.NotEqual(t, gotA, gotB)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	j := NewJWT("secret", WithTTL(time.Hour), WithClock(func() time.Time { return clock }))
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	clock = issued.Add(59 * time.Minute)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	clock = issued.Add(61 * time.Minute)
	_, err = j.ParseAccessToken(access)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_Invalid(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	other, err := NewJWT("other-secret").GenerateAccessToken(u)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: u.String(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   u.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   u.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not.a.jwt"},
		{name: "signature mismatch", token: other},
		{name: "missing subject", token: noSubject},
		{name: "missing expiry", token: noExpiry},
		{name: "unexpected algorithm", token: hs512},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := j.ParseAccessToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidToken)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestJWT_EmptySecretRefusesToSign(t *testing.T) {
	_, err := NewJWT("").GenerateAccessToken(uuid.New())
	require.Error(t, err)
}
