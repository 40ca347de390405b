package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/avatars"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// AvatarStorage is implemented by avatars.S3Storage.
type AvatarStorage interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// AvatarUpload tells the client where to PUT a new avatar. The key is then
// passed back to ConfirmAvatar.
type AvatarUpload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

var (
	errNoAvatarStorage = common.New(common.KindBadRequest, "avatar storage is not configured")
	errUnverified      = common.New(common.KindUnauthorized, "please verify your email")
)

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	avatars     AvatarStorage
	logger      logging.Logger
}

// NewProfileService builds the service; a nil storage disables the avatar
// operations.
func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, storage AvatarStorage, logger logging.Logger) *ProfileService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ProfileService{db: db, repomanager: m, avatars: storage, logger: logger.With("module", "profile")}
}

// GetProfile returns the profile with a presigned avatar URL. Like every
// profile operation it refuses an identity whose email is not verified.
func (s *ProfileService) GetProfile(ctx context.Context, email string) (models.PublicProfile, error) {
	identity, err := s.find(ctx, s.db, email)
	if err != nil {
		return models.PublicProfile{}, err
	}
	return s.withAvatarURL(ctx, identity.Profile()), nil
}

// UpdateProfile applies the set fields of upd.
func (s *ProfileService) UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (models.PublicProfile, error) {
	if err := validateProfile(upd); err != nil {
		return models.PublicProfile{}, err
	}

	var identity *models.Identity
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		i, err := s.findForUpdate(ctx, tx, email)
		if err != nil {
			return err
		}
		upd.Apply(i)
		identity = i
		return s.repomanager.Identities(tx).Update(ctx, i)
	})
	if err != nil {
		return models.PublicProfile{}, err
	}

	return s.withAvatarURL(ctx, identity.Profile()), nil
}

// RequestAvatarUpload reserves a new object key for the identity and
// presigns an upload to it.
func (s *ProfileService) RequestAvatarUpload(ctx context.Context, email string) (*AvatarUpload, error) {
	if s.avatars == nil {
		return nil, errNoAvatarStorage
	}

	identity, err := s.find(ctx, s.db, email)
	if err != nil {
		return nil, err
	}

	key := avatars.NewKey(identity.ID)
	url, err := s.avatars.PresignUpload(ctx, key)
	if err != nil {
		return nil, err
	}
	return &AvatarUpload{Key: key, UploadURL: url}, nil
}

// ConfirmAvatar makes key the identity's avatar. The previous object is
// deleted afterwards; a failed delete is only logged.
func (s *ProfileService) ConfirmAvatar(ctx context.Context, email, key string) (models.PublicProfile, error) {
	if s.avatars == nil {
		return models.PublicProfile{}, errNoAvatarStorage
	}

	var (
		identity *models.Identity
		previous string
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		i, err := s.findForUpdate(ctx, tx, email)
		if err != nil {
			return err
		}
		if !avatars.Owns(i.ID, key) {
			return common.New(common.KindBadRequest, "avatar key does not belong to this account")
		}
		previous, i.AvatarKey = i.AvatarKey, key
		identity = i
		return s.repomanager.Identities(tx).Update(ctx, i)
	})
	if err != nil {
		return models.PublicProfile{}, err
	}

	if previous != "" && previous != key {
		if err := s.avatars.Delete(ctx, previous); err != nil {
			s.logger.Warn(ctx, "previous avatar not deleted", "identity_id", identity.ID, "key", previous, "error", err.Error())
		}
	}

	return s.withAvatarURL(ctx, identity.Profile()), nil
}

func (s *ProfileService) find(ctx context.Context, db dbx.DBTX, email string) (*models.Identity, error) {
	return verified(s.repomanager.Identities(db).FindByEmail(ctx, models.NormalizeEmail(email)))
}

func (s *ProfileService) findForUpdate(ctx context.Context, tx dbx.DBTX, email string) (*models.Identity, error) {
	return verified(s.repomanager.Identities(tx).FindByEmailForUpdate(ctx, models.NormalizeEmail(email)))
}

func verified(identity *models.Identity, err error) (*models.Identity, error) {
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Wrap(common.KindNotFound, "user not found", err)
		}
		return nil, err
	}
	if !identity.IsVerified {
		return nil, errUnverified
	}
	return identity, nil
}

func (s *ProfileService) withAvatarURL(ctx context.Context, p models.PublicProfile) models.PublicProfile {
	if s.avatars == nil || p.AvatarKey == "" {
		return p
	}
	url, err := s.avatars.PresignDownload(ctx, p.AvatarKey)
	if err != nil {
		s.logger.Warn(ctx, "avatar url not presigned", "identity_id", p.ID, "error", err.Error())
		return p
	}
	p.AvatarURL = url
	return p
}

func validateProfile(upd models.ProfileUpdate) error {
	if upd.DateOfBirth != nil && *upd.DateOfBirth != "" {
		if _, err := time.Parse(models.DateOfBirthLayout, *upd.DateOfBirth); err != nil {
			return common.Wrap(common.KindBadRequest, "date of birth must be YYYY-MM-DD", err)
		}
	}
	return nil
}
