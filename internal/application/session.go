package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

// SessionService is the single source of truth for the current identity.
// The process-wide session has two states: anonymous (no identity) and
// authenticated (exactly one identity with a token). Transitions happen
// only through Login and Logout; Restore rehydrates from the durable cache
// at startup and leaves the session anonymous when nothing is cached.
type SessionService struct {
	store ports.SessionStore

	mu       sync.RWMutex
	identity domain.Identity
}

func NewSessionService(store ports.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Login replaces the session state with the given identity. The caller must
// have already obtained a valid token from the auth exchange; no validation
// happens here.
func (s *SessionService) Login(ctx context.Context, identity domain.Identity) error {
	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	if err := s.store.Save(ctx, identity); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Logout drops the identity, including its token. Calling it while already
// anonymous is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = domain.Identity{}
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *SessionService) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.identity, s.identity.Authenticated()
}

// Restore loads a cached identity if one exists. A missing cache is not an
// error; the session simply stays anonymous.
func (s *SessionService) Restore(ctx context.Context) error {
	identity, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	return nil
}
