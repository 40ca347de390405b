// Package grpc exposes the auth and profile services as the gophauth.v1
// AuthService. Tokens travel in the access_token metadata key.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address  string
	auth     *services.AuthService
	profiles *services.ProfileService
	tokens   *auth.TokenService
	logger   logging.Logger
}

var _ pb.AuthServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService, ps *services.ProfileService, tokens *auth.TokenService) *GRPCServer {
	if l == nil {
		l = logging.Nop()
	}
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		auth:     as,
		profiles: ps,
		tokens:   tokens,
	}
}

// NewServer creates a grpc.Server with the token interceptor and the
// service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
