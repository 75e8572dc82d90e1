package services

import (
	"context"
	"strings"
	"time"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/middleware"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
)

// AuthService resolves an email to a role-specific identity and signs a
// session token for it. Login is email-only: the system has no
// credential of any kind, which is preserved deliberately.
type AuthService struct {
	accounts   repositories.AccountRepository
	secret     []byte
	sessionTTL time.Duration
}

func NewAuthService(accounts repositories.AccountRepository, secret []byte, sessionTTL time.Duration) *AuthService {
	return &AuthService{accounts: accounts, secret: secret, sessionTTL: sessionTTL}
}

// LoginRenter returns the renter session and its signed token, or
// (nil, "", nil) when the email is not registered as a renter — an
// email that only exists as an agent does not log in here.
func (s *AuthService) LoginRenter(ctx context.Context, email string) (*middleware.Session, string, error) {
	ident, err := s.accounts.FindRenterIdentityByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", err
	}
	if ident == nil {
		return nil, "", nil
	}
	return s.issue(middleware.Session{
		Role:        middleware.RoleRenter,
		ActorID:     ident.ID,
		DisplayName: ident.FirstName,
	})
}

// LoginAgent is the agent-side counterpart of LoginRenter.
func (s *AuthService) LoginAgent(ctx context.Context, email string) (*middleware.Session, string, error) {
	ident, err := s.accounts.FindAgentIdentityByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", err
	}
	if ident == nil {
		return nil, "", nil
	}
	return s.issue(middleware.Session{
		Role:        middleware.RoleAgent,
		ActorID:     ident.ID,
		DisplayName: ident.FirstName,
	})
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) issue(sess middleware.Session) (*middleware.Session, string, error) {
	token, err := middleware.GenerateSessionToken(s.secret, sess, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return &sess, token, nil
}
