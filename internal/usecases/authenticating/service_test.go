package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:       "test-secret",
			DemoUsername: "demo",
			DemoPassword: "password123",
			TokenTTL:     2 * time.Hour,
		},
	}

	service, err := NewService(cfg)
	require.NoError(t, err)
	return service
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	session, err := service.Login("demo", "password123")
	require.NoError(t, err)

	assert.Equal(t, "demo", session.Username)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, now.Add(2*time.Hour), session.ExpiresAt)

	validated, err := service.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "demo", validated.Username)
	assert.Equal(t, session.Token, validated.Token)
	assert.True(t, validated.ExpiresAt.Equal(session.ExpiresAt))
}

func TestService_LoginFailures(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		err      error
		code     string
	}{
		{"senha errada", "demo", "wrong", ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
		{"usuário desconhecido", "someone", "password123", ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
		{"campos vazios", "", "", ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(tt.username, tt.password)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.err)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestService_ValidateTokenExpired(t *testing.T) {
	service := newTestService(t)
	issued := time.Now().Add(-3 * time.Hour)
	service.now = func() time.Time { return issued }

	session, err := service.Login("demo", "password123")
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateToken(session.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsTokenError(err))
}

func TestService_ValidateTokenRejectsForeignSignature(t *testing.T) {
	service := newTestService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "demo",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
