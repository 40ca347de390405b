package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() Claims {
	return Claims{IdentityID: "id-1", Email: "john@example.com", Role: models.RoleUser}
}

func TestMintVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	tok, err := Mint(testClaims(), secret, time.Hour)
	require.NoError(t, err)

	c, err := Verify(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "id-1", c.IdentityID)
	assert.Equal(t, "id-1", c.Subject)
	assert.Equal(t, "john@example.com", c.Email)
	assert.Equal(t, models.RoleUser, c.Role)
	assert.NotEmpty(t, c.ID)
}

func TestMint_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := Mint(testClaims(), nil, time.Hour)
	assert.Error(t, err)
}

func TestVerify_TTLBoundary(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	now := t0
	s := Signer{Now: func() time.Time { return now }}
	secret := []byte("secret")

	tok, err := s.Mint(testClaims(), secret, 15*time.Minute)
	require.NoError(t, err)

	now = t0.Add(15*time.Minute - time.Second)
	_, err = s.Verify(tok, secret)
	assert.NoError(t, err)

	now = t0.Add(15 * time.Minute)
	_, err = s.Verify(tok, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerify_Rejections(t *testing.T) {
	t.Parallel()

	secret := []byte("right-secret")
	valid, err := Mint(testClaims(), secret, time.Hour)
	require.NoError(t, err)

	noRole := testClaims()
	noRole.Role = "ROOT"
	badRole, err := Mint(noRole, secret, time.Hour)
	require.NoError(t, err)

	noEmail := testClaims()
	noEmail.Email = ""
	missing, err := Mint(noEmail, secret, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	parts[2] = strings.Repeat("A", len(parts[2]))
	tampered := strings.Join(parts, ".")

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		IdentityID: "id-1", Email: "a@b.c", Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims()).SignedString(secret)
	require.NoError(t, err)

	cases := map[string]struct {
		token  string
		secret []byte
	}{
		"wrong secret":  {valid, []byte("other-secret")},
		"garbage":       {"not.a.jwt", secret},
		"empty":         {"", secret},
		"tampered":      {tampered, secret},
		"unknown role":  {badRole, secret},
		"missing email": {missing, secret},
		"alg none":      {noneAlg, secret},
		"alg hs512":     {hs512, secret},
		"no exp":        {noExp, secret},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Verify(tc.token, tc.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidToken))
			assert.Equal(t, common.KindUnauthorized, common.KindOf(err))
		})
	}
}

func TestVerify_Issuer(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := Signer{Issuer: "gophauth"}.Mint(testClaims(), secret, time.Hour)
	require.NoError(t, err)

	_, err = Signer{Issuer: "gophauth"}.Verify(tok, secret)
	assert.NoError(t, err)

	_, err = Signer{Issuer: "someone-else"}.Verify(tok, secret)
	assert.Error(t, err)
}
