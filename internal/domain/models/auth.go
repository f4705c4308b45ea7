package models

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only role issued by the login endpoint. Every
// mutating request is re-checked against it server-side regardless of
// what the client believes its mode is.
const RoleAdmin = "admin"

// AdminClaims are the JWT claims carried by tokens from /auth/login.
type AdminClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email"`
}
