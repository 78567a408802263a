package security

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIdentityToken(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte("test-signing-secret"))

	tokenStr, err := CreateIdentityToken(&Identity{Name: "invoicing", Email: "team@itg.uk"}, secret, 3600)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	var claims IdentityClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-signing-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "invoicing", claims.Name)
	assert.Equal(t, "team@itg.uk", claims.Email)
	assert.Equal(t, "invoicegen", claims.Issuer)
}

func TestCreateIdentityTokenBadSecret(t *testing.T) {
	_, err := CreateIdentityToken(&Identity{Name: "invoicing"}, "not base64!!!", 3600)
	assert.Error(t, err)
}
