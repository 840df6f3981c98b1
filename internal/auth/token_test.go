package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("super-secret")

	tok, err := GenerateToken("user-123", secret, time.Hour)
	require.NoError(t, err)

	uid, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("u1", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken("u1", []byte("s"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("s"))
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("s"))
	assert.Error(t, err)
}

func TestParseToken_WrongAlg(t *testing.T) {
	// alg=none style tokens must never verify
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(signed, []byte("s"))
	assert.Error(t, err)
}

func TestParseToken_EmptyUserID(t *testing.T) {
	secret := []byte("s")
	tok, err := GenerateToken("", secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
