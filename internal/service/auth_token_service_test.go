package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTAuthTokenService("test-secret", time.Hour, "asset-signature-service")
	signer := testSigner()

	token, expiresAt, err := svc.Generate(signer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, signer.ID, got.ID)
	assert.Equal(t, signer.Email, got.Email)
	assert.Equal(t, signer.FirstName, got.FirstName)
	assert.Equal(t, signer.LastName, got.LastName)
}

func TestJWTAuthTokenService_WrongSecret(t *testing.T) {
	svc := NewJWTAuthTokenService("test-secret", time.Hour, "asset-signature-service")
	other := NewJWTAuthTokenService("other-secret", time.Hour, "asset-signature-service")

	token, _, err := svc.Generate(testSigner())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTAuthTokenService_Expired(t *testing.T) {
	svc := NewJWTAuthTokenService("test-secret", -time.Minute, "asset-signature-service")

	token, _, err := svc.Generate(testSigner())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTAuthTokenService_Garbage(t *testing.T) {
	svc := NewJWTAuthTokenService("test-secret", time.Hour, "asset-signature-service")

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
