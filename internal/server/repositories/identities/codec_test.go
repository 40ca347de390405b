package identities

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testIV  = "a0a1a2a3a4a5a6a7a8a9aaabacadaeaf"
)

func newCodec(t *testing.T, fields ...string) *FieldCodec {
	t.Helper()
	c, err := cryptox.NewFieldCipher(testKey, testIV)
	require.NoError(t, err)
	codec, err := NewFieldCodec(c, fields)
	require.NoError(t, err)
	return codec
}

func TestNewFieldCodec_UnknownField(t *testing.T) {
	c, err := cryptox.NewFieldCipher(testKey, testIV)
	require.NoError(t, err)

	_, err = NewFieldCodec(c, []string{"phone", "password_hash"})
	assert.Error(t, err)
}

func TestNewFieldCodec_Dedup(t *testing.T) {
	codec := newCodec(t, "phone", "street", "phone")
	assert.Equal(t, []string{"phone", "street"}, codec.Fields())
}

func TestFieldCodec_EncodeDecode(t *testing.T) {
	codec := newCodec(t, "phone", "street", "date_of_birth")

	in := &models.Identity{Email: "a@b.c", Phone: "+371 2000", Street: "Main 1", FirstName: "Ann"}
	enc, err := codec.Encode(in)
	require.NoError(t, err)

	assert.Equal(t, "+371 2000", in.Phone, "input must not be modified")
	assert.NotEqual(t, in.Phone, enc.Phone)
	assert.NotEqual(t, in.Street, enc.Street)
	assert.Empty(t, enc.DateOfBirth, "empty values stay empty")
	assert.Equal(t, "Ann", enc.FirstName, "unconfigured field untouched")
	assert.Equal(t, "a@b.c", enc.Email)

	require.NoError(t, codec.Decode(enc))
	assert.Equal(t, *in, *enc)
}

func TestFieldCodec_DecodeCorrupt(t *testing.T) {
	codec := newCodec(t, "phone")

	err := codec.Decode(&models.Identity{Phone: "plain-text-phone"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrCipher))
	assert.True(t, errors.Is(err, cryptox.ErrCipherText))
	assert.Contains(t, err.Error(), "phone")
}

func TestEncryptedRepository_StoresCiphertext(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	codec := newCodec(t, "phone", "street", "location", "postal_code", "date_of_birth")
	repo := NewEncryptedRepository(NewSQLRepository(db, dbx.SQLite), codec)

	in := &models.Identity{
		Email:        "enc@example.com",
		PasswordHash: "h",
		Phone:        "+371 2000",
		Street:       "Main 1",
		DateOfBirth:  "1990-01-31",
		FirstName:    "Ann",
	}
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "+371 2000", created.Phone)
	assert.NotEmpty(t, created.ID)

	var rawPhone, rawStreet, rawDOB, rawFirst string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT phone, street, date_of_birth, first_name FROM identities WHERE id = ?1`, created.ID,
	).Scan(&rawPhone, &rawStreet, &rawDOB, &rawFirst))

	assert.NotEqual(t, "+371 2000", rawPhone)
	assert.NotEqual(t, "Main 1", rawStreet)
	assert.NotEqual(t, "1990-01-31", rawDOB)
	assert.Equal(t, "Ann", rawFirst)

	want, err := codec.cipher.EncryptField("+371 2000")
	require.NoError(t, err)
	assert.Equal(t, want, rawPhone, "encryption is deterministic")

	got, err := repo.FindByEmail(ctx, "enc@example.com")
	require.NoError(t, err)
	assert.Equal(t, "+371 2000", got.Phone)
	assert.Equal(t, "Main 1", got.Street)
	assert.Equal(t, "1990-01-31", got.DateOfBirth)

	got.Location = "Riga"
	require.NoError(t, repo.Update(ctx, got))
	assert.Equal(t, "Riga", got.Location)

	again, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Riga", again.Location)
}

func TestEncryptedRepository_CorruptColumn(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	repo := NewEncryptedRepository(NewSQLRepository(db, dbx.SQLite), newCodec(t, "phone"))

	created, err := repo.Create(ctx, &models.Identity{Email: "c@example.com", PasswordHash: "h", Phone: "1"})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `UPDATE identities SET phone = 'garbage' WHERE id = ?1`, created.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, common.KindCipher, common.KindOf(err))
}
