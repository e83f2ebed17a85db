package jwt

import (
	"Gomez-Kitchen/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserIDByToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")
	token := svc.GenerateTokenUser(TokenUser{ID: "u-1", Email: "ana@example.com", Name: "Ana"})
	require.NotEmpty(t, token)

	id, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestGetUserIDByToken_Invalid(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")
	token := NewJWTServiceWithSecret("other").GenerateTokenUser(TokenUser{ID: "u-1"})

	_, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	svc := &jwtService{
		secretKey: "secret",
		issuer:    "test",
		now:       func() time.Time { return time.Now().Add(-25 * time.Hour) },
	}
	token := svc.GenerateTokenUser(TokenUser{ID: "u-1"})

	_, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
