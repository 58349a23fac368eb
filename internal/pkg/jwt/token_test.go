package jwt

import (
	"testing"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.BridgeConfig {
	return models.BridgeConfig{
		Secret:          "test-secret-key-for-view-tokens",
		TokenExpiration: 60,
		Issuer:          "link-test",
	}
}

func TestGenerateViewToken(t *testing.T) {
	cfg := getTestConfig()

	tokenString, expiresAt, err := GenerateViewToken("session-1", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	expected := time.Now().Add(60 * time.Minute).Unix()
	assert.InDelta(t, expected, expiresAt, 5)

	claims, err := ValidateViewToken(tokenString, cfg.Secret, cfg.Issuer)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "link-test", claims.Issuer)
}

func TestValidateViewToken(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateViewToken("session-2", cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.TokenExpiration = -1
	expired, _, err := GenerateViewToken("session-3", expiredCfg)
	require.NoError(t, err)

	otherIssuerCfg := cfg
	otherIssuerCfg.Issuer = "someone-else"
	otherIssuer, _, err := GenerateViewToken("session-4", otherIssuerCfg)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, models.ViewClaims{SessionID: "session-5"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		secret      string
		issuer      string
		expectError bool
	}{
		{name: "valid token", token: valid, secret: cfg.Secret, issuer: cfg.Issuer},
		{name: "issuer check skipped", token: otherIssuer, secret: cfg.Secret, issuer: ""},
		{name: "wrong secret", token: valid, secret: "wrong-secret", issuer: cfg.Issuer, expectError: true},
		{name: "expired token", token: expired, secret: cfg.Secret, issuer: cfg.Issuer, expectError: true},
		{name: "wrong issuer", token: otherIssuer, secret: cfg.Secret, issuer: cfg.Issuer, expectError: true},
		{name: "unsigned token", token: unsigned, secret: cfg.Secret, issuer: cfg.Issuer, expectError: true},
		{name: "malformed token", token: "not.a.token", secret: cfg.Secret, issuer: cfg.Issuer, expectError: true},
		{name: "empty token", token: "", secret: cfg.Secret, issuer: cfg.Issuer, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateViewToken(tt.token, tt.secret, tt.issuer)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
