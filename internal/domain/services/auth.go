package services

import "context"

// AuthService checks admin credentials and issues bearer tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed
	// token, or domain.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (string, error)
}
