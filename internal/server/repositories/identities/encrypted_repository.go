package identities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// EncryptedRepository wraps a Repository and runs every record through a
// FieldCodec: encrypted on write, decrypted on read.
type EncryptedRepository struct {
	next  Repository
	codec *FieldCodec
}

func NewEncryptedRepository(next Repository, codec *FieldCodec) *EncryptedRepository {
	return &EncryptedRepository{next: next, codec: codec}
}

func (r *EncryptedRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	enc, err := r.codec.Encode(identity)
	if err != nil {
		return nil, err
	}
	stored, err := r.next.Create(ctx, enc)
	if err != nil {
		return nil, err
	}
	identity.ID, identity.Role = stored.ID, stored.Role
	identity.CreatedAt, identity.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	return identity, nil
}

func (r *EncryptedRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return r.decoded(r.next.FindByEmail(ctx, email))
}

func (r *EncryptedRepository) FindByEmailForUpdate(ctx context.Context, email string) (*models.Identity, error) {
	return r.decoded(r.next.FindByEmailForUpdate(ctx, email))
}

func (r *EncryptedRepository) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	return r.decoded(r.next.FindByID(ctx, id))
}

func (r *EncryptedRepository) Update(ctx context.Context, identity *models.Identity) error {
	enc, err := r.codec.Encode(identity)
	if err != nil {
		return err
	}
	if err := r.next.Update(ctx, enc); err != nil {
		return err
	}
	identity.UpdatedAt = enc.UpdatedAt
	return nil
}

// SetOTP passes through; code hashes are never encrypted fields.
func (r *EncryptedRepository) SetOTP(ctx context.Context, id string, purpose models.OTPPurpose, hash string, expiresAt time.Time) error {
	return r.next.SetOTP(ctx, id, purpose, hash, expiresAt)
}

func (r *EncryptedRepository) decoded(i *models.Identity, err error) (*models.Identity, error) {
	if err != nil {
		return nil, err
	}
	if err := r.codec.Decode(i); err != nil {
		return nil, err
	}
	return i, nil
}
