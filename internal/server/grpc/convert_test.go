package grpc

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestToProfile(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   models.PublicProfile
		want *pb.Profile
	}{
		{
			"full",
			models.PublicProfile{
				ID: "id-1", Email: "a@x.com", Role: models.RoleAdmin, IsVerified: true,
				FirstName: "Ann", Phone: "+371", AvatarKey: "avatars/id-1/k", AvatarURL: "https://s3/k",
				CreatedAt: created,
			},
			&pb.Profile{
				Id: "id-1", Email: "a@x.com", Role: "ADMIN", IsVerified: true,
				FirstName: "Ann", Phone: "+371", AvatarKey: "avatars/id-1/k", AvatarUrl: "https://s3/k",
			},
		},
		{"zero time is left unset", models.PublicProfile{ID: "id-2"}, &pb.Profile{Id: "id-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toProfile(tt.in)
			if tt.in.CreatedAt.IsZero() {
				assert.Nil(t, got.CreatedAt)
			} else {
				require.NotNil(t, got.CreatedAt)
				assert.True(t, tt.in.CreatedAt.Equal(got.CreatedAt.AsTime()))
			}
			got.CreatedAt = nil
			assert.True(t, proto.Equal(tt.want, got), "got %v", got)
		})
	}
}

func TestFromProfileUpdate(t *testing.T) {
	assert.Equal(t, models.ProfileUpdate{}, fromProfileUpdate(nil))

	first, empty := "Ann", ""
	got := fromProfileUpdate(&pb.ProfileUpdate{FirstName: &first, Street: &empty})
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Ann", *got.FirstName)
	require.NotNil(t, got.Street)
	assert.Empty(t, *got.Street)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.DateOfBirth)
}
