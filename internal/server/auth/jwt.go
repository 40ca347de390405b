// Package auth mints and verifies the HS256 JSON Web Tokens used by the
// service. Each token namespace (access, refresh, reset) has its own secret,
// so a token minted for one namespace never verifies in another.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Scope narrows what a token may be used for. Access and refresh tokens
// carry no scope.
type Scope string

const (
	ScopeNone         Scope = ""
	ScopeResetPending Scope = "reset:pending"
	ScopeResetGranted Scope = "reset:granted"
)

// Claims is the fixed claim set of every token.
type Claims struct {
	IdentityID string      `json:"id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	Scope      Scope       `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// ClaimsFor builds the claims describing an identity.
func ClaimsFor(i *models.Identity, scope Scope) Claims {
	return Claims{IdentityID: i.ID, Email: i.Email, Role: i.Role, Scope: scope}
}

// Signer holds the clock and issuer shared by Mint and Verify.
type Signer struct {
	Issuer string
	Now    func() time.Time
}

func (s Signer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Mint signs claims with secret. The token expires ttl after now.
func (s Signer) Mint(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty signing secret")
	}

	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   claims.IdentityID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// Every failure is an UNAUTHORIZED "invalid token" error.
func (s Signer) Verify(token string, secret []byte) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return nil, invalidToken(err)
	}
	if !parsed.Valid {
		return nil, invalidToken(errors.New("token is not valid"))
	}
	if claims.IdentityID == "" || claims.Email == "" {
		return nil, invalidToken(errors.New("missing identity claims"))
	}
	if !claims.Role.Valid() {
		return nil, invalidToken(fmt.Errorf("unknown role %q", claims.Role))
	}

	return claims, nil
}

func invalidToken(cause error) error {
	return common.Wrap(common.KindUnauthorized, "invalid token", cause)
}

// Mint signs claims with the wall clock and no issuer.
func Mint(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	return Signer{}.Mint(claims, secret, ttl)
}

// Verify checks a token minted by Mint.
func Verify(token string, secret []byte) (*Claims, error) {
	return Signer{}.Verify(token, secret)
}
