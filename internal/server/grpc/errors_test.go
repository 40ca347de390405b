package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/server/otp"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"not found", common.New(common.KindNotFound, "user not found"), codes.NotFound, "user not found"},
		{"conflict", common.New(common.KindConflict, "email is already registered"), codes.AlreadyExists, "email is already registered"},
		{"unauthorized", common.ErrInvalidToken, codes.Unauthenticated, "invalid token"},
		{"bad request", common.New(common.KindBadRequest, "otp is required"), codes.InvalidArgument, "otp is required"},
		{"expired", common.Wrap(common.KindExpired, "verification code has expired", otp.ErrExpired), codes.InvalidArgument, "verification code has expired"},
		{"wrapped", fmt.Errorf("outer: %w", common.New(common.KindConflict, "taken")), codes.AlreadyExists, "taken"},
		{"cipher", common.Wrap(common.KindCipher, "field cipher error", cryptox.ErrCipherText), codes.Internal, "internal error"},
		{"plain", errors.New("db error: connection refused"), codes.Internal, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tt.err))
			assert.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
