package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classboard/internal/auth"
	"classboard/internal/httputil"
)

func TestRequireAdmin(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}

	valid, err := tokens.Issue("admin@classboard.test")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var gotEmail string
	handler := RequireAdmin(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = httputil.AdminEmail(r)
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotEmail = ""
			req := httptest.NewRequest(http.MethodPost, "/api/notes/folder", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantStatus == http.StatusNoContent && gotEmail != "admin@classboard.test" {
				t.Errorf("admin email not propagated, got %q", gotEmail)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("expected problem+json response, got %q", ct)
				}
			}
		})
	}
}
