package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrMissingCredentials is returned when email or password is blank
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials is reserved for a real auth service rejecting a login
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthError is what Login returns on any failure. The session is left
// untouched whenever one is returned.
type AuthError struct {
	Email string
	Err   error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed for %q: %v", e.Email, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown under the login form.
func (e *AuthError) UserMessage() string {
	switch {
	case errors.Is(e.Err, ErrMissingCredentials):
		return "Informe email e senha."
	case errors.Is(e.Err, ErrInvalidCredentials):
		return "Email ou senha inválidos."
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "O servidor demorou para responder. Tente novamente."
	default:
		return "Não foi possível entrar. Tente novamente."
	}
}

// Authenticator checks a credential pair and returns the identity on success.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (User, error)
}

// StubAuthenticator accepts every credential pair. It stands in for the
// agency's auth service until one exists.
type StubAuthenticator struct{}

func (StubAuthenticator) Authenticate(ctx context.Context, email, _ string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	return User{Email: email, Name: displayName(email)}, nil
}

// RequireFields rejects blank email or password before delegating to Next.
type RequireFields struct {
	Next Authenticator
}

func (r RequireFields) Authenticate(ctx context.Context, email, password string) (User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return User{}, ErrMissingCredentials
	}
	return r.Next.Authenticate(ctx, email, password)
}

// displayName derives "Cliente" style names from the local part of an email.
func displayName(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if local == "" {
		return "Cliente"
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}
