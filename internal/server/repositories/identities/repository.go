// Package identities persists identity records. The SQL repository speaks
// both Postgres and SQLite; the encrypted decorator applies the field codec
// on the way in and out, so callers only ever see plaintext.
package identities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository stores identities. Emails are expected in normalized form.
// Lookups of a missing identity return an error matching common.ErrNotFound;
// a duplicate email on Create returns one matching common.ErrConflict.
type Repository interface {
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	// FindByEmailForUpdate also locks the row until the surrounding
	// transaction ends, where the dialect has row locks.
	FindByEmailForUpdate(ctx context.Context, email string) (*models.Identity, error)
	FindByID(ctx context.Context, id string) (*models.Identity, error)
	Update(ctx context.Context, identity *models.Identity) error
	// SetOTP writes only the code slot of purpose on the identity with id.
	SetOTP(ctx context.Context, id string, purpose models.OTPPurpose, hash string, expiresAt time.Time) error
}
