package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const adminEmailKey contextKey = "adminEmail"

// WithAdmin marks the request as authenticated admin.
func WithAdmin(r *http.Request, email string) *http.Request {
	ctx := context.WithValue(r.Context(), adminEmailKey, email)
	return r.WithContext(ctx)
}

// AdminEmail returns the authenticated admin's email, or "" if the
// request carried no valid token.
func AdminEmail(r *http.Request) string {
	email, _ := r.Context().Value(adminEmailKey).(string)
	return email
}
