package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindCodes = map[common.Kind]codes.Code{
	common.KindNotFound:     codes.NotFound,
	common.KindConflict:     codes.AlreadyExists,
	common.KindUnauthorized: codes.Unauthenticated,
	common.KindBadRequest:   codes.InvalidArgument,
	common.KindExpired:      codes.InvalidArgument,
}

// toStatus converts a service error to a gRPC status. Internal and cipher
// errors are reported without detail.
func toStatus(err error) error {
	code, ok := kindCodes[common.KindOf(err)]
	if !ok {
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, common.MessageOf(err))
}

func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err.Error())
	} else {
		s.logger.Debug(ctx, "request rejected", "method", method, "error", err.Error())
	}
	return st
}
