package client_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/adam.stanek/growthwalk/pkg/client"
)

func TestInspectJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "newuser789",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	info := client.InspectToken(token)

	assert.True(t, info.IsJWT)
	assert.Equal(t, "newuser789", info.Subject)
	assert.True(t, exp.Equal(info.ExpiresAt))
}

func TestInspectOpaqueToken(t *testing.T) {
	info := client.InspectToken("abc")

	assert.False(t, info.IsJWT)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}
