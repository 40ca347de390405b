package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	s.logger.Info(ctx, "Registration request")

	res, err := s.auth.Register(ctx, services.RegisterInput{Email: req.Email, Password: req.Password, Profile: fromProfileUpdate(req.Profile)})
	if err != nil {
		return nil, s.fail(ctx, "Register", err)
	}

	s.logger.Info(ctx, "Registered", "identity_id", res.Profile.ID)
	return authResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "Login", err)
	}
	return authResponse(res), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	token, err := s.auth.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, "RefreshToken", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: token}, nil
}

func (s *GRPCServer) RequestEmailVerification(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.RequestEmailVerification(ctx, claims.Email); err != nil {
		return nil, s.fail(ctx, "RequestEmailVerification", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ResendEmailOTP(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.ResendEmailOTP(ctx, claims.Email); err != nil {
		return nil, s.fail(ctx, "ResendEmailOTP", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) VerifyEmailOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.AuthResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.auth.VerifyEmailOTP(ctx, claims.Email, req.Code)
	if err != nil {
		return nil, s.fail(ctx, "VerifyEmailOTP", err)
	}
	return authResponse(res), nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.ResetTokenResponse, error) {
	token, err := s.auth.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		return nil, s.fail(ctx, "ForgotPassword", err)
	}
	return &pb.ResetTokenResponse{ResetToken: token}, nil
}

func (s *GRPCServer) ResendResetOTP(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.ResendResetOTP(ctx, claims.Email); err != nil {
		return nil, s.fail(ctx, "ResendResetOTP", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) VerifyResetOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.ResetTokenResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.auth.VerifyResetOTP(ctx, claims.Email, req.Code)
	if err != nil {
		return nil, s.fail(ctx, "VerifyResetOTP", err)
	}
	return &pb.ResetTokenResponse{ResetToken: token}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ProfileResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.auth.ResetPassword(ctx, claims.Email, req.NewPassword)
	if err != nil {
		return nil, s.fail(ctx, "ResetPassword", err)
	}
	return profileResponse(p), nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ProfileResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.auth.ChangePassword(ctx, claims.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return nil, s.fail(ctx, "ChangePassword", err)
	}
	return profileResponse(p), nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.Empty) (*pb.ProfileResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.GetProfile(ctx, claims.Email)
	if err != nil {
		return nil, s.fail(ctx, "GetProfile", err)
	}
	return profileResponse(p), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.UpdateProfile(ctx, claims.Email, fromProfileUpdate(req.Profile))
	if err != nil {
		return nil, s.fail(ctx, "UpdateProfile", err)
	}
	return profileResponse(p), nil
}

func (s *GRPCServer) RequestAvatarUpload(ctx context.Context, req *pb.Empty) (*pb.AvatarUploadResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	up, err := s.profiles.RequestAvatarUpload(ctx, claims.Email)
	if err != nil {
		return nil, s.fail(ctx, "RequestAvatarUpload", err)
	}
	return &pb.AvatarUploadResponse{Key: up.Key, UploadUrl: up.UploadURL}, nil
}

func (s *GRPCServer) ConfirmAvatar(ctx context.Context, req *pb.ConfirmAvatarRequest) (*pb.ProfileResponse, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.ConfirmAvatar(ctx, claims.Email, req.Key)
	if err != nil {
		return nil, s.fail(ctx, "ConfirmAvatar", err)
	}
	return profileResponse(p), nil
}
