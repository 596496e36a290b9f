package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager("test-secret")

	tokenString, err := manager.GenerateToken("user-1", "tenant-1", "Acme Health", "member")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "Acme Health", claims.TenantName)
	assert.Equal(t, "member", claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret")
	tokenString, err := manager.GenerateToken("user-1", "tenant-1", "Acme Health", "member")
	require.NoError(t, err)

	other := NewJWTManager("another-secret")
	_, err = other.VerifyToken(tokenString)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret")
	_, err := manager.VerifyToken("not-a-token")
	assert.Error(t, err)
}
