package identities

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "sqlite"))
	return db
}

func TestSQLite_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openSQLite(t), dbx.SQLite)

	exp := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &models.Identity{
		Email:        "john@example.com",
		PasswordHash: "hash",
		OTPHash:      "otp",
		OTPExpiresAt: &exp,
		Phone:        "+371",
	})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.False(t, byEmail.IsVerified)
	assert.Equal(t, "otp", byEmail.OTPHash)
	require.NotNil(t, byEmail.OTPExpiresAt)
	assert.True(t, exp.Equal(*byEmail.OTPExpiresAt))
	assert.Nil(t, byEmail.ResetOTPExpiresAt)
	assert.Equal(t, "+371", byEmail.Phone)

	byEmail.IsVerified = true
	byEmail.ClearOTP(models.OTPEmailVerification)
	byEmail.Role = models.RoleAdmin
	require.NoError(t, repo.Update(ctx, byEmail))

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, byID.IsVerified)
	assert.Empty(t, byID.OTPHash)
	assert.Nil(t, byID.OTPExpiresAt)
	assert.Equal(t, models.RoleAdmin, byID.Role)
}

func TestSQLite_Conflict(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openSQLite(t), dbx.SQLite)

	_, err := repo.Create(ctx, &models.Identity{Email: "dup@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Identity{Email: "dup@example.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestSQLite_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openSQLite(t), dbx.SQLite)

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	err = repo.Update(ctx, &models.Identity{ID: "missing", Email: "x@example.com", Role: models.RoleUser})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSQLite_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := NewSQLRepository(tx, dbx.SQLite).Create(ctx, &models.Identity{Email: "tx@example.com", PasswordHash: "h"}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = NewSQLRepository(db, dbx.SQLite).FindByEmail(ctx, "tx@example.com")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSQLite_SetOTPLeavesOtherColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openSQLite(t), dbx.SQLite)

	created, err := repo.Create(ctx, &models.Identity{Email: "slot@example.com", PasswordHash: "old"})
	require.NoError(t, err)

	stale, err := repo.FindByEmail(ctx, "slot@example.com")
	require.NoError(t, err)

	fresh, err := repo.FindByEmailForUpdate(ctx, "slot@example.com")
	require.NoError(t, err)
	fresh.PasswordHash = "new"
	require.NoError(t, repo.Update(ctx, fresh))

	exp := time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC)
	require.NoError(t, repo.SetOTP(ctx, stale.ID, models.OTPPasswordReset, "reset", exp))

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)
	assert.Equal(t, "reset", got.ResetOTPHash)
	require.NotNil(t, got.ResetOTPExpiresAt)
	assert.True(t, exp.Equal(*got.ResetOTPExpiresAt))
	assert.Empty(t, got.OTPHash)

	err = repo.SetOTP(ctx, "missing", models.OTPEmailVerification, "h", exp)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
