package auth

import (
	"testing"
	"time"

	"pennyekart/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func createTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	return service.(*jwtService)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	service, err := NewJWTService(cfg)

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestJWTService_ValidateToken_Success(t *testing.T) {
	service := createTestJWTService(t)

	tokenString := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "agent-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := service.ValidateToken(tokenString, testSecret)

	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "agent-1", claims["sub"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := createTestJWTService(t)

	tokenString := signedToken(t, "other-secret", jwt.MapClaims{
		"sub": "agent-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := service.ValidateToken(tokenString, testSecret)

	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := createTestJWTService(t)

	tokenString := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "agent-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	token, err := service.ValidateToken(tokenString, testSecret)

	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ValidateToken_WrongSigningMethod(t *testing.T) {
	service := createTestJWTService(t)

	// alg=none tokens must be rejected outright.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "agent-1"})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := service.ValidateToken(tokenString, testSecret)

	assert.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}
