package token_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "seller@example.com",
		Role:  domain.RoleSeller,
	}
}

func TestNewTokenServiceRequiresKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	user := testUser()
	token, err := svc.GenerateToken(context.Background(), user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer, err := NewTokenService("key-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("key-two")
	require.NoError(t, err)

	token, err := issuer.GenerateToken(context.Background(), testUser(), time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
