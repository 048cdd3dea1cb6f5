package utils

import (
	"fmt"
	"github.com/golang-jwt/jwt"
	"github.com/ougirez/revman/internal/pkg/constants"
	"time"
)

// AuthTokenWrapper is the payload of the admin cookie.
type AuthTokenWrapper struct {
	jwt.StandardClaims
	Secret string `json:"secret"`
}

func GenerateAuthToken(wrapper *AuthTokenWrapper, signingKey string, ttl time.Duration) (string, error) {
	if ttl != 0 {
		wrapper.ExpiresAt = time.Now().Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}
	return signed, nil
}

func ParseAuthToken(raw string, signingKey string) (*AuthTokenWrapper, error) {
	claims := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), constants.ErrUnauthorized)
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return claims, nil
}
