package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "task-board.community/task-board/internal/errors"
)

// TokenService signs and parses the bearer tokens handed out at login.
// The subject claim carries the username.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse returns the username a token was issued for, or ErrUnauthenticated
// for anything expired, malformed, or signed with the wrong key.
func (s *TokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.ErrUnauthenticated
			}
			return s.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return "", apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrUnauthenticated
	}

	return claims.Subject, nil
}
