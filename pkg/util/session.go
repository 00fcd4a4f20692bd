package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// PendingSignup is a staged, unpersisted account. It lives only inside
// the session token until the maze step either commits it to the user
// collection or the visitor abandons it.
type PendingSignup struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// SessionClaims is the payload of the session cookie: the logged-in
// identity, a staged signup, or both at once (a logged-in user can
// start a signup for someone else without losing their session).
type SessionClaims struct {
	Username string         `json:"username,omitempty"`
	Pending  *PendingSignup `json:"pending,omitempty"`
	jwt.RegisteredClaims
}

// Empty reports whether the claims carry neither an identity nor a
// staged signup, in which case the cookie can be dropped entirely.
func (c *SessionClaims) Empty() bool {
	return c.Username == "" && c.Pending == nil
}

// GenerateSessionToken signs a session token carrying the given
// identity and staged signup.
func GenerateSessionToken(username string, pending *PendingSignup, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Username: username,
		Pending:  pending,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
