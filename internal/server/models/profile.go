package models

import (
	"time"
)

// PublicProfile is what clients get to see of an identity. It never carries
// password or OTP hashes.
type PublicProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Street      string    `json:"street,omitempty"`
	Location    string    `json:"location,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	AvatarKey   string    `json:"avatar_key,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Redacted keeps the account name fields and drops the personal details.
// It is what an unproven caller may see.
func (p PublicProfile) Redacted() PublicProfile {
	return PublicProfile{
		ID:         p.ID,
		Email:      p.Email,
		Role:       p.Role,
		IsVerified: p.IsVerified,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		CreatedAt:  p.CreatedAt,
	}
}

// ProfileUpdate lists the profile attributes a client may change. Nil
// fields are left as they are.
type ProfileUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Street      *string `json:"street,omitempty"`
	Location    *string `json:"location,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// Apply copies the set fields onto i.
func (u ProfileUpdate) Apply(i *Identity) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&i.FirstName, u.FirstName)
	set(&i.LastName, u.LastName)
	set(&i.Phone, u.Phone)
	set(&i.Street, u.Street)
	set(&i.Location, u.Location)
	set(&i.PostalCode, u.PostalCode)
	set(&i.DateOfBirth, u.DateOfBirth)
}

// DateOfBirthLayout is the accepted date of birth format.
const DateOfBirthLayout = "2006-01-02"
