package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errReason = errors.New("reason")

func TestError_IsMatchesByKind(t *testing.T) {
	err := New(KindNotFound, "identity not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "identity not found", err.Error())
}

func TestError_WrapKeepsCause(t *testing.T) {
	err := fmt.Errorf("verify: %w", Wrap(KindExpired, "otp has expired", errReason))

	assert.True(t, errors.Is(err, ErrExpired))
	assert.True(t, errors.Is(err, errReason))
	assert.Equal(t, KindExpired, KindOf(err))
	assert.Equal(t, "otp has expired", MessageOf(err))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
}

func TestInvalidToken_IsUnauthorized(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidToken, ErrUnauthorized))
}

func TestError_EmptyMessageFallsBackToKind(t *testing.T) {
	assert.Equal(t, "CONFLICT", (&Error{Kind: KindConflict}).Error())
}
