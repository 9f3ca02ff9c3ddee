package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/config"
)

// ParseUserID verifies an access token and extracts the userId claim.
// Token issuance lives in the auth service; this server only verifies.
func ParseUserID(tokenString string, cfg config.Config) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	raw, ok := claims["userId"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("userId claim missing")
	}
	return uuid.Parse(raw)
}
