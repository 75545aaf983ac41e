package auth

import (
	"testing"
	"time"

	"destinos/config"
	"destinos/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()

	var key any = []byte(secret)
	if method == jwt.SigningMethodNone {
		key = jwt.UnsafeAllowNoneSignatureType
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, &service.Claims{
		Subject: "operator-1",
		Roles:   []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestJWTService_ValidateToken_StandardSubject(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "operator-2",
		"roles": []string{"admin"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-2", claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.here"},
		{name: "wrong secret", token: signToken(t, "another_secret", jwt.SigningMethodHS256, &service.Claims{
			Subject:          "op",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{name: "expired", token: signToken(t, testSecret, jwt.SigningMethodHS256, &service.Claims{
			Subject:          "op",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		})},
		{name: "no expiry", token: signToken(t, testSecret, jwt.SigningMethodHS256, &service.Claims{Subject: "op"})},
		{name: "unsigned", token: signToken(t, "", jwt.SigningMethodNone, &service.Claims{
			Subject:          "op",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
