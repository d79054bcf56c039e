package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "ana@example.com", "store-admin", 60)
	require.NoError(t, err)

	userID, email, err := jwt.Parse(secret, token)

	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "", "store-admin", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "", "store-admin", -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestGenerate_SinSecretOSujeto(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "", "x", 60)
	assert.Error(t, err)

	_, err = jwt.Generate(secret, "", "", "x", 60)
	assert.Error(t, err)
}
