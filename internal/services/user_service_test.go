package services

import (
	"context"
	"testing"

	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/testutil"
)

func TestUserService_Register(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewUserService(mockRepo, log)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		username string
		password string
		wantErr  bool
	}{
		{
			name:     "valid registration",
			email:    "dev@example.com",
			username: "dev",
			password: "correct-horse",
			wantErr:  false,
		},
		{
			name:     "duplicate email",
			email:    "dev@example.com",
			username: "dev2",
			password: "correct-horse",
			wantErr:  true,
		},
		{
			name:     "short password",
			email:    "other@example.com",
			username: "other",
			password: "short",
			wantErr:  true,
		},
		{
			name:     "missing email",
			email:    "",
			username: "nobody",
			password: "correct-horse",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := service.Register(ctx, tt.email, tt.username, tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if u.ID == 0 {
				t.Error("Register() returned 0 id")
			}
			if u.PasswordHash == tt.password || u.PasswordHash == "" {
				t.Error("Register() stored the password unhashed")
			}
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewUserService(mockRepo, log)
	ctx := context.Background()

	if _, err := service.Register(ctx, "dev@example.com", "dev", "correct-horse"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    "dev@example.com",
			password: "correct-horse",
			wantErr:  false,
		},
		{
			name:     "email is case insensitive",
			email:    "DEV@Example.com",
			password: "correct-horse",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			email:    "dev@example.com",
			password: "battery-staple",
			wantErr:  true,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "correct-horse",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := service.Authenticate(ctx, tt.email, tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && u == nil {
				t.Error("Authenticate() returned nil user")
			}
		})
	}
}
