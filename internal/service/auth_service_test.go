package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthServiceForTest() AuthService {
	return NewAuthService(newFakeUserRepo(), testJWTSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest()

	user, err := svc.Register(context.Background(), "Jamie", "jamie@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Jamie", user.Name)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")

	token, loggedIn, err := svc.Login(context.Background(), "jamie@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	// The token carries the coach id in the uid claim.
	claims := struct {
		UserID string `json:"uid"`
		jwt.RegisteredClaims
	}{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Jamie", "jamie@example.com", "supersecret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Jamie", "jamie@example.com", "different")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Jamie", "jamie@example.com", "supersecret")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "jamie@example.com", "wrong")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "supersecret")

	assert.ErrorIs(t, wrongPassword, ErrAuthenticationFailed)
	assert.ErrorIs(t, unknownEmail, ErrAuthenticationFailed)
}
