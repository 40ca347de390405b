// Package otp issues and checks the six digit one-time codes used for email
// verification and password reset. Codes are stored only as bcrypt hashes
// on the identity record and expire after TTL.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// TTL is how long an issued code stays valid.
const TTL = 5 * time.Minute

const (
	minCode   = 100000
	codeRange = 900000
)

type Purpose = models.OTPPurpose

const (
	PurposeEmailVerification = models.OTPEmailVerification
	PurposePasswordReset     = models.OTPPasswordReset
)

// Reasons a verification fails. They are wrapped in a common.Error, so
// callers can match either the reason or the kind.
var (
	ErrNotRequested = errors.New("otp not requested")
	ErrExpired      = errors.New("otp expired")
	ErrMismatch     = errors.New("otp mismatch")
)

// Hasher is the part of cryptox.PasswordHasher the engine needs.
type Hasher interface {
	Hash(secret string) (string, error)
	Matches(hash, secret string) bool
}

// Issued is a freshly generated code. Code is the only place the plaintext
// exists; it goes into the email and nowhere else.
type Issued struct {
	Code      string
	Hash      string
	ExpiresAt time.Time
	Purpose   Purpose
}

type Engine struct {
	hasher Hasher
	now    func() time.Time
	rand   io.Reader
}

type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand replaces crypto/rand as the code source.
func WithRand(r io.Reader) Option {
	return func(e *Engine) { e.rand = r }
}

func NewEngine(h Hasher, opts ...Option) *Engine {
	e := &Engine{hasher: h, now: time.Now, rand: rand.Reader}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Now is the engine's clock.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Issue generates a code in [100000, 999999] for purpose.
func (e *Engine) Issue(purpose Purpose) (Issued, error) {
	n, err := rand.Int(e.rand, big.NewInt(codeRange))
	if err != nil {
		return Issued{}, fmt.Errorf("generate otp: %w", err)
	}
	code := strconv.FormatInt(n.Int64()+minCode, 10)

	hash, err := e.hasher.Hash(code)
	if err != nil {
		return Issued{}, fmt.Errorf("hash otp: %w", err)
	}

	return Issued{
		Code:      code,
		Hash:      hash,
		ExpiresAt: e.now().Add(TTL).UTC(),
		Purpose:   purpose,
	}, nil
}

// Verify checks code against a stored hash and expiry. Expiry is checked
// before the code, so an expired code reports EXPIRED even when it is wrong.
// The code is valid strictly before expiresAt.
func (e *Engine) Verify(hash string, expiresAt *time.Time, code string) error {
	if hash == "" || expiresAt == nil {
		return common.Wrap(common.KindBadRequest, "no verification code was requested", ErrNotRequested)
	}
	if !e.now().Before(*expiresAt) {
		return common.Wrap(common.KindExpired, "verification code has expired", ErrExpired)
	}
	if !e.hasher.Matches(hash, code) {
		return common.Wrap(common.KindBadRequest, "invalid verification code", ErrMismatch)
	}
	return nil
}
