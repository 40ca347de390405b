package auth

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Namespace is a secret and lifetime pair for one kind of token.
type Namespace struct {
	Secret []byte
	TTL    time.Duration
}

// TokenService issues and checks access, refresh and reset tokens.
type TokenService struct {
	signer  Signer
	access  Namespace
	refresh Namespace
	reset   Namespace
}

type Option func(*TokenService)

// WithClock replaces time.Now for both minting and verification.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.signer.Now = now }
}

// WithIssuer sets the iss claim and requires it on verification.
func WithIssuer(issuer string) Option {
	return func(s *TokenService) { s.signer.Issuer = issuer }
}

// NewTokenService rejects empty secrets, non-positive TTLs and secrets
// shared between namespaces.
func NewTokenService(access, refresh, reset Namespace, opts ...Option) (*TokenService, error) {
	named := map[string]Namespace{"access": access, "refresh": refresh, "reset": reset}
	for name, ns := range named {
		if len(ns.Secret) == 0 {
			return nil, fmt.Errorf("%s token secret is empty", name)
		}
		if ns.TTL <= 0 {
			return nil, fmt.Errorf("%s token ttl must be positive", name)
		}
	}
	if bytes.Equal(access.Secret, refresh.Secret) || bytes.Equal(access.Secret, reset.Secret) || bytes.Equal(refresh.Secret, reset.Secret) {
		return nil, errors.New("token secrets must differ between namespaces")
	}

	s := &TokenService{access: access, refresh: refresh, reset: reset}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *TokenService) IssueAccess(i *models.Identity) (string, error) {
	return s.signer.Mint(ClaimsFor(i, ScopeNone), s.access.Secret, s.access.TTL)
}

func (s *TokenService) IssueRefresh(i *models.Identity) (string, error) {
	return s.signer.Mint(ClaimsFor(i, ScopeNone), s.refresh.Secret, s.refresh.TTL)
}

func (s *TokenService) IssueReset(i *models.Identity, scope Scope) (string, error) {
	if scope == ScopeNone {
		return "", errors.New("reset token needs a scope")
	}
	return s.signer.Mint(ClaimsFor(i, scope), s.reset.Secret, s.reset.TTL)
}

func (s *TokenService) VerifyAccess(token string) (*Claims, error) {
	return s.verifyScoped(token, s.access.Secret, ScopeNone)
}

func (s *TokenService) VerifyRefresh(token string) (*Claims, error) {
	return s.verifyScoped(token, s.refresh.Secret, ScopeNone)
}

// VerifyReset accepts only reset tokens carrying exactly scope.
func (s *TokenService) VerifyReset(token string, scope Scope) (*Claims, error) {
	return s.verifyScoped(token, s.reset.Secret, scope)
}

func (s *TokenService) verifyScoped(token string, secret []byte, scope Scope) (*Claims, error) {
	c, err := s.signer.Verify(token, secret)
	if err != nil {
		return nil, err
	}
	if c.Scope != scope {
		return nil, invalidToken(fmt.Errorf("scope %q not accepted", c.Scope))
	}
	return c, nil
}
