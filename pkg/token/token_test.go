package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT("admin", "admin", testSecret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "shuttlescore", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT("admin", "admin", testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	tokenString, err := GenerateJWT("admin", "admin", testSecret, -5)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}

func TestValidateJWTEmptyInputs(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)
}
