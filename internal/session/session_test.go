package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type rejectAll struct{}

func (rejectAll) Authenticate(context.Context, string, string) (User, error) {
	return User{}, ErrInvalidCredentials
}

func TestLoginWithStubAcceptsAnything(t *testing.T) {
	s := NewStore(nil)

	if s.IsAuthenticated() {
		t.Fatal("new session should start unauthenticated")
	}

	if err := s.Login(context.Background(), "user@example.com", "anything"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after successful login")
	}
	u, ok := s.User()
	if !ok || u.Email != "user@example.com" || u.Name != "User" {
		t.Errorf("User() = %+v, %v", u, ok)
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		auth     Authenticator
		email    string
		password string
		wantErr  error
	}{
		{
			name:    "blank fields",
			auth:    RequireFields{Next: StubAuthenticator{}},
			email:   "  ",
			wantErr: ErrMissingCredentials,
		},
		{
			name:     "blank password",
			auth:     RequireFields{Next: StubAuthenticator{}},
			email:    "user@example.com",
			password: "",
			wantErr:  ErrMissingCredentials,
		},
		{
			name:     "rejected",
			auth:     rejectAll{},
			email:    "user@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.auth)
			err := s.Login(context.Background(), tt.email, tt.password)

			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("Login() error = %v, want *AuthError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want wrapping %v", err, tt.wantErr)
			}
			if authErr.UserMessage() == "" {
				t.Error("AuthError.UserMessage() is empty")
			}
			if s.IsAuthenticated() {
				t.Error("session authenticated after failed login")
			}
		})
	}
}

func TestLoginHonoursCancelledContext(t *testing.T) {
	s := NewStore(StubAuthenticator{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := s.Login(ctx, "user@example.com", "pw")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Login() error = %v, want deadline exceeded", err)
	}
	if s.IsAuthenticated() {
		t.Error("session authenticated after timed out login")
	}
}

func TestLogout(t *testing.T) {
	s := NewStore(nil)
	if err := s.Login(context.Background(), "a@b.c", "x"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after Logout")
	}
	if u, ok := s.User(); ok || u != (User{}) {
		t.Errorf("User() = %+v, %v after Logout", u, ok)
	}

	// Logout is unconditional
	s.Logout()
	if s.IsAuthenticated() {
		t.Error("second Logout changed state")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"user@example.com": "User",
		"ana":              "Ana",
		"":                 "Cliente",
		"@example.com":     "Cliente",
	}
	for in, want := range tests {
		if got := displayName(in); got != want {
			t.Errorf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}
