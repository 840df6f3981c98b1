// Package auth issues and verifies the signed tokens that keep the admin
// logged in, and provides the Fiber middleware that guards protected routes.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the signed token travels in.
const CookieName = "token"

// TokenTTL bounds how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

var ErrTokenInvalid = errors.New("invalid token")

// Claims embeds the registered claims plus the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken signs an HS256 token for userID valid for ttl.
func GenerateToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded user id.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || strings.TrimSpace(claims.UserID) == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}
