package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes secrets (passwords and OTP codes) with bcrypt.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{cost: cost}, nil
}

func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt hash of secret. Secrets longer than 72 bytes are
// rejected as a bad request instead of being silently truncated.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", common.Wrap(common.KindBadRequest, "password is too long", err)
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Matches reports whether secret hashes to hash. A malformed hash never matches.
func (h *PasswordHasher) Matches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
