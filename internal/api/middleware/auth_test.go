package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stackroast/stackroast/internal/auth"
)

func TestOptionalAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	pair, err := auth.MintTokens(42, "dev@example.com", "user", secret, time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantUserID int64
		wantFound  bool
	}{
		{
			name:      "no token passes through anonymously",
			wantFound: false,
		},
		{
			name:       "bearer token attaches the user",
			authHeader: "Bearer " + pair.AccessToken,
			wantUserID: 42,
			wantFound:  true,
		},
		{
			name:       "cookie token attaches the user",
			cookie:     pair.AccessToken,
			wantUserID: 42,
			wantFound:  true,
		},
		{
			name:       "garbage token passes through anonymously",
			authHeader: "Bearer not-a-jwt",
			wantFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotFound bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotFound = GetUserID(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/score", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			OptionalAuthMiddleware(secret)(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if gotFound != tt.wantFound {
				t.Fatalf("user attached = %v, want %v", gotFound, tt.wantFound)
			}
			if gotFound && gotUserID != tt.wantUserID {
				t.Errorf("user id = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	const secret = "test-secret"

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "admin passes", role: "admin", wantStatus: http.StatusOK},
		{name: "regular user rejected", role: "user", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := auth.MintTokens(7, "dev@example.com", tt.role, secret, time.Hour, time.Hour)
			if err != nil {
				t.Fatalf("MintTokens() error = %v", err)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := AuthMiddleware(secret)(RequireAdmin(next))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tools", nil)
			req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
