package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(42, "John Doe", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndGetClaims(token, "test-secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims["id"])
	assert.Equal(t, "John Doe", claims["name"])
	assert.NotEmpty(t, claims["jti"])
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(42, "John Doe", "test-secret")
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateAndGetClaims("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := GenerateAccessToken(42, "John Doe", "")
	assert.Error(t, err)
}
