package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"classboard/internal/auth"
	"classboard/internal/domain"
	"classboard/internal/domain/services"
)

type authService struct {
	adminEmail   string
	passwordHash string
	tokens       *auth.TokenManager
	logger       *slog.Logger
}

// NewService creates the login service. The password hash is a bcrypt
// hash configured on the server; plaintext never touches config.
func NewService(adminEmail, passwordHash string, tokens *auth.TokenManager, logger *slog.Logger) services.AuthService {
	return &authService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Login checks the credential pair and issues a session token. The
// same error is returned for a wrong email and a wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.passwordHash == "" {
		s.logger.Error("admin login attempted but no credentials are configured")
		return "", domain.ErrUnauthorized
	}

	if email != s.adminEmail {
		return "", domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("failed admin login", "email", email)
		return "", domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", err
	}

	s.logger.Info("admin logged in", "email", email)

	return token, nil
}
