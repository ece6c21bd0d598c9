package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HttpOnly cookie carrying the session token.
const SessionCookieName = "auth-token"

type SessionClaims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a signed session token for an identifier
// (lowercased email or digit-only phone).
func GenerateSessionToken(identifier string, secret string, hours int) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(hours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken returns the identifier a token was issued for. Any
// malformed, tampered or expired token comes back as not-ok, never an error.
func ParseSessionToken(tokenString string, secret string) (string, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
