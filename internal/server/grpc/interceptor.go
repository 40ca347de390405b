package grpc

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// namespace names the kind of token a method requires.
type namespace int

const (
	public namespace = iota
	access
	resetPending
	resetGranted
)

type policy struct {
	ns    namespace
	roles []models.Role
}

var anyRole = []models.Role{models.RoleUser, models.RoleAdmin}

var policies = map[string]policy{
	pb.AuthService_Ping_FullMethodName:                     {ns: public},
	pb.AuthService_Register_FullMethodName:                 {ns: public},
	pb.AuthService_Login_FullMethodName:                    {ns: public},
	pb.AuthService_RefreshToken_FullMethodName:             {ns: public},
	pb.AuthService_ForgotPassword_FullMethodName:           {ns: public},
	pb.AuthService_RequestEmailVerification_FullMethodName: {ns: access, roles: anyRole},
	pb.AuthService_ResendEmailOTP_FullMethodName:           {ns: access, roles: anyRole},
	pb.AuthService_VerifyEmailOTP_FullMethodName:           {ns: access, roles: anyRole},
	pb.AuthService_ChangePassword_FullMethodName:           {ns: access, roles: anyRole},
	pb.AuthService_GetProfile_FullMethodName:               {ns: access, roles: anyRole},
	pb.AuthService_UpdateProfile_FullMethodName:            {ns: access, roles: anyRole},
	pb.AuthService_RequestAvatarUpload_FullMethodName:      {ns: access, roles: anyRole},
	pb.AuthService_ConfirmAvatar_FullMethodName:            {ns: access, roles: anyRole},
	pb.AuthService_ResendResetOTP_FullMethodName:           {ns: resetPending, roles: anyRole},
	pb.AuthService_VerifyResetOTP_FullMethodName:           {ns: resetPending, roles: anyRole},
	pb.AuthService_ResetPassword_FullMethodName:            {ns: resetGranted, roles: anyRole},
}

var errUnauthenticated = status.Error(codes.Unauthenticated, "unauthorized")

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	p, ok := policies[info.FullMethod]
	if !ok {
		s.logger.Warn(ctx, "method has no policy", "method", info.FullMethod)
		return nil, errUnauthenticated
	}
	if p.ns == public {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return nil, errUnauthenticated
	}

	claims, err := s.verify(p.ns, token)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "method", info.FullMethod, "error", err.Error())
		return nil, errUnauthenticated
	}
	if !slices.Contains(p.roles, claims.Role) {
		s.logger.Debug(ctx, "role rejected", "method", info.FullMethod, "role", string(claims.Role))
		return nil, errUnauthenticated
	}

	return handler(context.WithValue(ctx, claimsKey, claims), req)
}

func (s *GRPCServer) verify(ns namespace, token string) (*auth.Claims, error) {
	switch ns {
	case access:
		return s.tokens.VerifyAccess(token)
	case resetPending:
		return s.tokens.VerifyReset(token, auth.ScopeResetPending)
	case resetGranted:
		return s.tokens.VerifyReset(token, auth.ScopeResetGranted)
	}
	return nil, common.ErrInvalidToken
}

// claimsFrom returns the claims stored by the interceptor.
func claimsFrom(ctx context.Context) (*auth.Claims, error) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok || c == nil {
		return nil, errUnauthenticated
	}
	return c, nil
}
