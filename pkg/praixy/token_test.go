package praixy

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry_OpaqueKey(t *testing.T) {
	exp, err := TokenExpiry("mk-0123456789abcdef")
	require.NoError(t, err)
	assert.True(t, exp.IsZero())
}

func TestTokenExpiry_JWT(t *testing.T) {
	want := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "agent",
		"exp": want.Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	exp, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.Equal(t, want.Unix(), exp.Unix())
}

func TestTokenExpiry_JWTWithoutExp(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "agent",
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	exp, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.True(t, exp.IsZero())
}
