// Package token issues and parses the HS256 access tokens used by the API.
package token

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyEnvVar names the environment variable holding the signing key.
const KeyEnvVar = "VANTAGE_TOKEN_KEY"

// ErrMissingKey is returned when no signing key is configured
var ErrMissingKey = errors.New("VANTAGE_TOKEN_KEY environment variable is required")

// Claims are the token claims. Subject carries the user ID.
type Claims struct {
	Email string `json:"email"`
	OrgID string `json:"org"`
	jwt.RegisteredClaims
}

// Key returns the signing key from the environment.
func Key() ([]byte, error) {
	key := os.Getenv(KeyEnvVar)
	if key == "" {
		return nil, ErrMissingKey
	}
	return []byte(key), nil
}

// Issue signs a token for the user scoped to an organization.
func Issue(userID, orgID, email string, ttl time.Duration) (string, time.Time, error) {
	key, err := Key()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		Email: email,
		OrgID: orgID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a token string and returns its claims. Expiry and
// signing method are enforced.
func Parse(tokenStr string) (*Claims, error) {
	key, err := Key()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.OrgID == "" {
		return nil, errors.New("token is missing required claims")
	}
	return claims, nil
}
