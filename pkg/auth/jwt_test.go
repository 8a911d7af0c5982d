package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	claims := SessionClaims{
		AccountID:   uuid.New(),
		AccountKind: model.AccountKindPatient,
		Email:       "jane@example.com",
	}

	token, err := svc.Generate(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.AccountID, parsed.AccountID)
	assert.Equal(t, claims.AccountKind, parsed.AccountKind)
	assert.Equal(t, claims.Email, parsed.Email)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Generate(SessionClaims{
		AccountID:   uuid.New(),
		AccountKind: model.AccountKindDoctor,
	})
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Generate(SessionClaims{
		AccountID:   uuid.New(),
		AccountKind: model.AccountKindPatient,
	})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", time.Hour).Validate("not-a-token")
	assert.Error(t, err)
}
