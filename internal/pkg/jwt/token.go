package jwt

import (
	"fmt"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateViewToken signs a session token a map view presents when it connects
func GenerateViewToken(sessionID string, cfg models.BridgeConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.TokenExpiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := models.ViewClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateViewToken validates a map view token and returns its claims.
// An empty issuer skips the issuer check.
func ValidateViewToken(tokenString, secret, issuer string) (*models.ViewClaims, error) {
	claims := &models.ViewClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("unexpected issuer: %s", claims.Issuer)
	}

	return claims, nil
}
