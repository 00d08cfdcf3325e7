package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, refreshToken, err := GenerateAllTokens("test-secret", "admin@example.com", "Amina", "El Fassi", "admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims, msg := ValidateToken("test-secret", token)
	require.Empty(t, msg)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Amina", claims.FirstName)
	assert.Equal(t, "El Fassi", claims.LastName)
	assert.Equal(t, "admin-1", claims.Uid)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateAllTokens("test-secret", "admin@example.com", "Amina", "El Fassi", "admin-1")
	require.NoError(t, err)

	claims, msg := ValidateToken("other-secret", token)
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}

func TestValidateTokenGarbage(t *testing.T) {
	claims, msg := ValidateToken("test-secret", "not-a-jwt")
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}
