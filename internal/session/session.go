package session

import (
	"context"
	"sync"

	"github.com/julianstephens/onetake/internal/logger"
)

type User struct {
	Email string
	Name  string
}

// Store is the process-wide session. The login screen is its only writer;
// everything else reads IsAuthenticated for guard checks.
type Store struct {
	auth Authenticator

	mu            sync.RWMutex
	authenticated bool
	user          User
}

func NewStore(auth Authenticator) *Store {
	if auth == nil {
		auth = StubAuthenticator{}
	}
	return &Store{auth: auth}
}

// Login authenticates email/password. On failure the session is unchanged
// and the returned error is an *AuthError.
func (s *Store) Login(ctx context.Context, email, password string) error {
	logger.Info("login attempt", "email", email)

	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		logger.Warn("login failed", "email", email, "error", err)
		return &AuthError{Email: email, Err: err}
	}

	s.mu.Lock()
	s.authenticated = true
	s.user = user
	s.mu.Unlock()

	logger.Info("login succeeded", "email", email)
	return nil
}

// Logout resets the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.user = User{}
	s.mu.Unlock()
	logger.Info("logged out")
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.authenticated
}
