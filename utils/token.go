package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopper-front/config"
)

// SessionClaims is the frontend session cookie payload. BackendToken is the
// backend's access token, carried so API calls can authenticate without a
// second cookie.
type SessionClaims struct {
	UserID       string `json:"uid"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BackendToken string `json:"btk"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints the signed cookie value for a logged-in user.
func GenerateSessionToken(userID, email, role, backendToken string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:       userID,
		Email:        email,
		Role:         role,
		BackendToken: backendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AppConfig.SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.SessionSecret))
}

// ValidateSessionToken parses and verifies a session cookie value.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
