package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/google/uuid"
)

const selectColumns = `id, email, password_hash, role, is_verified,
		otp_hash, otp_expires_at, reset_otp_hash, reset_otp_expires_at,
		first_name, last_name, phone, street, location, postal_code, date_of_birth, avatar_key,
		created_at, updated_at`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

// Create inserts identity, assigning an ID when it has none and stamping
// both timestamps.
func (r *SQLRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}
	if identity.Role == "" {
		identity.Role = models.RoleUser
	}
	now := timex.FromMillis(timex.ToMillis(r.now()))
	identity.CreatedAt, identity.UpdatedAt = now, now

	query := `INSERT INTO identities (
		id, email, password_hash, role, is_verified,
		otp_hash, otp_expires_at, reset_otp_hash, reset_otp_expires_at,
		first_name, last_name, phone, street, location, postal_code, date_of_birth, avatar_key,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, r.q(query),
		identity.ID, identity.Email, identity.PasswordHash, string(identity.Role), identity.IsVerified,
		nullString(identity.OTPHash), nullMillis(identity.OTPExpiresAt),
		nullString(identity.ResetOTPHash), nullMillis(identity.ResetOTPExpiresAt),
		identity.FirstName, identity.LastName, identity.Phone, identity.Street,
		identity.Location, identity.PostalCode, identity.DateOfBirth, identity.AvatarKey,
		timex.ToMillis(identity.CreatedAt), timex.ToMillis(identity.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.Wrap(common.KindConflict, "identity already exists", err)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := `SELECT ` + selectColumns + ` FROM identities WHERE email = $1`
	return r.findOne(ctx, query, email)
}

// FindByEmailForUpdate appends FOR UPDATE on Postgres. SQLite has no row
// locks; its single connection already serializes writers.
func (r *SQLRepository) FindByEmailForUpdate(ctx context.Context, email string) (*models.Identity, error) {
	query := `SELECT ` + selectColumns + ` FROM identities WHERE email = $1`
	if r.dialect == dbx.Postgres {
		query += ` FOR UPDATE`
	}
	return r.findOne(ctx, query, email)
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	query := `SELECT ` + selectColumns + ` FROM identities WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg any) (*models.Identity, error) {
	var (
		i                  models.Identity
		role               string
		otpHash, resetHash sql.NullString
		otpExp, resetExp   sql.NullInt64
		createdAt, updated int64
	)

	err := r.db.QueryRowContext(ctx, r.q(query), arg).Scan(
		&i.ID, &i.Email, &i.PasswordHash, &role, &i.IsVerified,
		&otpHash, &otpExp, &resetHash, &resetExp,
		&i.FirstName, &i.LastName, &i.Phone, &i.Street, &i.Location, &i.PostalCode, &i.DateOfBirth, &i.AvatarKey,
		&createdAt, &updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	i.Role = models.Role(role)
	i.OTPHash, i.OTPExpiresAt = otpHash.String, fromNullMillis(otpExp)
	i.ResetOTPHash, i.ResetOTPExpiresAt = resetHash.String, fromNullMillis(resetExp)
	i.CreatedAt, i.UpdatedAt = timex.FromMillis(createdAt), timex.FromMillis(updated)

	return &i, nil
}

// Update overwrites every mutable column of the identity with the given ID
// in a single statement, so OTP hash and expiry always change together.
func (r *SQLRepository) Update(ctx context.Context, identity *models.Identity) error {
	identity.UpdatedAt = timex.FromMillis(timex.ToMillis(r.now()))

	query := `UPDATE identities SET
		email = $2, password_hash = $3, role = $4, is_verified = $5,
		otp_hash = $6, otp_expires_at = $7, reset_otp_hash = $8, reset_otp_expires_at = $9,
		first_name = $10, last_name = $11, phone = $12, street = $13, location = $14,
		postal_code = $15, date_of_birth = $16, avatar_key = $17, updated_at = $18
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, r.q(query),
		identity.ID, identity.Email, identity.PasswordHash, string(identity.Role), identity.IsVerified,
		nullString(identity.OTPHash), nullMillis(identity.OTPExpiresAt),
		nullString(identity.ResetOTPHash), nullMillis(identity.ResetOTPExpiresAt),
		identity.FirstName, identity.LastName, identity.Phone, identity.Street,
		identity.Location, identity.PostalCode, identity.DateOfBirth, identity.AvatarKey,
		timex.ToMillis(identity.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return common.Wrap(common.KindConflict, "identity already exists", err)
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// SetOTP replaces one code slot and touches nothing else, so a code issued
// from a stale read cannot undo a concurrent password or profile change.
func (r *SQLRepository) SetOTP(ctx context.Context, id string, purpose models.OTPPurpose, hash string, expiresAt time.Time) error {
	hashCol, expCol := "otp_hash", "otp_expires_at"
	if purpose == models.OTPPasswordReset {
		hashCol, expCol = "reset_otp_hash", "reset_otp_expires_at"
	}

	query := `UPDATE identities SET ` + hashCol + ` = $2, ` + expCol + ` = $3, updated_at = $4 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, r.q(query),
		id, nullString(hash), timex.ToMillis(expiresAt), timex.ToMillis(r.now()),
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timex.ToMillis(*t)
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := timex.FromMillis(v.Int64)
	return &t
}
