package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the authorization role carried in tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Identity is the persisted record of one user account. Profile fields are
// plaintext here; the store encrypts the configured ones below this layer.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsVerified   bool

	OTPHash      string
	OTPExpiresAt *time.Time

	ResetOTPHash      string
	ResetOTPExpiresAt *time.Time

	FirstName   string
	LastName    string
	Phone       string
	Street      string
	Location    string
	PostalCode  string
	DateOfBirth string
	AvatarKey   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetOTP stores a pending code of the given purpose. Hash and expiry always
// travel together; a previous code of the same purpose is replaced.
func (i *Identity) SetOTP(purpose OTPPurpose, hash string, expiresAt time.Time) {
	exp := expiresAt.UTC()
	switch purpose {
	case OTPPasswordReset:
		i.ResetOTPHash, i.ResetOTPExpiresAt = hash, &exp
	default:
		i.OTPHash, i.OTPExpiresAt = hash, &exp
	}
}

// ClearOTP removes the pending code of the given purpose.
func (i *Identity) ClearOTP(purpose OTPPurpose) {
	switch purpose {
	case OTPPasswordReset:
		i.ResetOTPHash, i.ResetOTPExpiresAt = "", nil
	default:
		i.OTPHash, i.OTPExpiresAt = "", nil
	}
}

// PendingOTP returns the stored hash and expiry for purpose. An empty hash
// means nothing was requested.
func (i *Identity) PendingOTP(purpose OTPPurpose) (string, *time.Time) {
	if purpose == OTPPasswordReset {
		return i.ResetOTPHash, i.ResetOTPExpiresAt
	}
	return i.OTPHash, i.OTPExpiresAt
}

// OTPPurpose separates the verification and reset code slots.
type OTPPurpose string

const (
	OTPEmailVerification OTPPurpose = "email_verification"
	OTPPasswordReset     OTPPurpose = "password_reset"
)

// Profile returns the client-facing view of the identity.
func (i *Identity) Profile() PublicProfile {
	return PublicProfile{
		ID:          i.ID,
		Email:       i.Email,
		Role:        i.Role,
		IsVerified:  i.IsVerified,
		FirstName:   i.FirstName,
		LastName:    i.LastName,
		Phone:       i.Phone,
		Street:      i.Street,
		Location:    i.Location,
		PostalCode:  i.PostalCode,
		DateOfBirth: i.DateOfBirth,
		AvatarKey:   i.AvatarKey,
		CreatedAt:   i.CreatedAt,
	}
}
