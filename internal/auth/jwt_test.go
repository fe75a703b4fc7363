package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// o segredo é lido uma única vez; precisa existir antes do primeiro uso
	jwtSecret = []byte("segredo-de-teste")
	secretOnce.Do(func() {})
}

func TestGerarEValidarToken(t *testing.T) {
	tokenStr, err := GerarToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ValidarToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidarTokenAdulterado(t *testing.T) {
	tokenStr, err := GerarToken(1)
	require.NoError(t, err)

	_, err = ValidarToken(tokenStr + "x")
	assert.Error(t, err)
}

func TestValidarTokenDeOutroSegredo(t *testing.T) {
	claims := &Claims{UserID: 7}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString([]byte("outro-segredo"))
	require.NoError(t, err)

	_, err = ValidarToken(assinado)
	assert.Error(t, err)
}

func TestValidarTokenAlgoritmoErrado(t *testing.T) {
	// alg "none" nunca passa pelo parser restrito a HS256
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 7})
	assinado, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidarToken(assinado)
	assert.Error(t, err)
}

func TestValidarTokenLixo(t *testing.T) {
	_, err := ValidarToken("não-é-um-jwt")
	assert.Error(t, err)
}
