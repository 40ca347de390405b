package cryptox

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost - 1)
	assert.Error(t, err)
	_, err = NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, h.Cost())
}

func TestPasswordHasher_HashAndMatch(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.Matches(hash, "s3cret!"))
	assert.False(t, h.Matches(hash, "s3cret"))
	assert.False(t, h.Matches("not-a-hash", "s3cret!"))
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("p", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrBadRequest))
}
