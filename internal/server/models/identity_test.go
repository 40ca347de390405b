package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("USER")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	_, err = ParseRole("root")
	assert.Error(t, err)
	assert.False(t, Role("").Valid())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("  John@Example.COM "))
}

func TestIdentity_OTPSlotsAreIndependent(t *testing.T) {
	var id Identity
	exp := time.Date(2026, 1, 1, 10, 5, 0, 0, time.UTC)

	id.SetOTP(OTPEmailVerification, "h1", exp)
	id.SetOTP(OTPPasswordReset, "h2", exp.Add(time.Minute))

	h, e := id.PendingOTP(OTPEmailVerification)
	assert.Equal(t, "h1", h)
	require.NotNil(t, e)
	assert.True(t, e.Equal(exp))

	h, e = id.PendingOTP(OTPPasswordReset)
	assert.Equal(t, "h2", h)
	require.NotNil(t, e)
	assert.True(t, e.Equal(exp.Add(time.Minute)))

	id.ClearOTP(OTPEmailVerification)
	h, e = id.PendingOTP(OTPEmailVerification)
	assert.Empty(t, h)
	assert.Nil(t, e)

	h, _ = id.PendingOTP(OTPPasswordReset)
	assert.Equal(t, "h2", h)
}

func TestIdentity_SetOTPOverwrites(t *testing.T) {
	var id Identity
	now := time.Now()
	id.SetOTP(OTPEmailVerification, "old", now)
	id.SetOTP(OTPEmailVerification, "new", now.Add(time.Minute))

	h, e := id.PendingOTP(OTPEmailVerification)
	assert.Equal(t, "new", h)
	assert.True(t, e.Equal(now.Add(time.Minute)))
}

func TestProfileUpdate_Apply(t *testing.T) {
	id := Identity{FirstName: "A", Phone: "1"}
	first, phone := "B", ""
	ProfileUpdate{FirstName: &first, Phone: &phone}.Apply(&id)

	assert.Equal(t, "B", id.FirstName)
	assert.Empty(t, id.Phone)
	assert.Empty(t, id.LastName)
}

func TestIdentity_ProfileHasNoSecrets(t *testing.T) {
	id := Identity{ID: "1", Email: "a@b.c", PasswordHash: "$2a$...", OTPHash: "x", Role: RoleUser, Street: "s"}
	p := id.Profile()
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "s", p.Street)
	assert.Equal(t, RoleUser, p.Role)
}
