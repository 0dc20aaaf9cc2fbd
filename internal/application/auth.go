package application

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

// AuthService runs the credential exchange against the backend and feeds the
// outcome into the session.
type AuthService struct {
	api     ports.AuthAPI
	session *SessionService
}

func NewAuthService(api ports.AuthAPI, session *SessionService) *AuthService {
	return &AuthService{api: api, session: session}
}

// SignIn exchanges credentials for an identity and stores it in the session.
// Missing fields fail with domain.ErrValidation before any network call. A
// rejected exchange leaves the session untouched: no token is stored.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Identity, error) {
	if email == "" || password == "" {
		return domain.Identity{}, domain.ErrValidation
	}

	identity, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("login exchange: %w", err)
	}
	if !identity.Authenticated() {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	if err := s.session.Login(ctx, identity); err != nil {
		return domain.Identity{}, err
	}

	return identity, nil
}

func (s *AuthService) SignUp(ctx context.Context, reg ports.Registration) error {
	if reg.FullName == "" || reg.Email == "" || reg.Password == "" {
		return domain.ErrValidation
	}
	if reg.Role == "" {
		reg.Role = domain.RoleRecipient
	}

	if err := s.api.Register(ctx, reg); err != nil {
		return fmt.Errorf("register account: %w", err)
	}

	return nil
}

func (s *AuthService) SignOut(ctx context.Context) error {
	return s.session.Logout(ctx)
}
