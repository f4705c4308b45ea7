package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
)

// DefaultTokenTTL is how long an admin session token stays valid.
const DefaultTokenTTL = 12 * time.Hour

// TokenManager issues and verifies the HS256 session tokens handed out
// by the login endpoint.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager. The secret must be non-empty.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the admin role for the given email.
func (m *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	claims := &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role:  models.RoleAdmin,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a token and returns its claims. Anything other than
// a valid, unexpired HS256 admin token yields domain.ErrUnauthorized.
func (m *TokenManager) Verify(tokenString string) (*models.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Guard against algorithm confusion; only HS256 is ever issued.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if claims.Role != models.RoleAdmin || claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
