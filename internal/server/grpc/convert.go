package grpc

import (
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toProfile(p models.PublicProfile) *pb.Profile {
	out := &pb.Profile{
		Id:          p.ID,
		Email:       p.Email,
		Role:        string(p.Role),
		IsVerified:  p.IsVerified,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		Street:      p.Street,
		Location:    p.Location,
		PostalCode:  p.PostalCode,
		DateOfBirth: p.DateOfBirth,
		AvatarKey:   p.AvatarKey,
		AvatarUrl:   p.AvatarURL,
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(p.CreatedAt)
	}
	return out
}

// fromProfileUpdate keeps presence: a nil message or unset field leaves the
// stored value alone.
func fromProfileUpdate(u *pb.ProfileUpdate) models.ProfileUpdate {
	if u == nil {
		return models.ProfileUpdate{}
	}
	return models.ProfileUpdate{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Street:      u.Street,
		Location:    u.Location,
		PostalCode:  u.PostalCode,
		DateOfBirth: u.DateOfBirth,
	}
}

func authResponse(res *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Profile:      toProfile(res.Profile),
	}
}

func profileResponse(p models.PublicProfile) *pb.ProfileResponse {
	return &pb.ProfileResponse{Profile: toProfile(p)}
}
