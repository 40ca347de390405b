// Package services contains server-side business logic. AuthService runs
// the credential workflows (registration, login, email verification,
// password reset and change, token refresh); ProfileService covers the
// profile and avatar operations of a signed in identity.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/otp"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by the workflows that sign an identity in.
// RefreshToken is empty where only an access token is minted.
type AuthResult struct {
	TokenPair
	Profile models.PublicProfile
}

// RegisterInput carries the registration form. Profile fields are optional.
type RegisterInput struct {
	Email    string
	Password string
	Profile  models.ProfileUpdate
}

// AuthDeps are the collaborators of AuthService.
type AuthDeps struct {
	DB      *sql.DB
	Repos   repomanager.RepositoryManager
	Tokens  *auth.TokenService
	Codes   *otp.Engine
	Hasher  *cryptox.PasswordHasher
	Sender  notify.Sender
	Logger  logging.Logger
	Company string
}

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	codes       *otp.Engine
	hasher      *cryptox.PasswordHasher
	sender      notify.Sender
	logger      logging.Logger
	company     string
}

func NewAuthService(d AuthDeps) *AuthService {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &AuthService{
		db:          d.DB,
		repomanager: d.Repos,
		tokens:      d.Tokens,
		codes:       d.Codes,
		hasher:      d.Hasher,
		sender:      d.Sender,
		logger:      logger.With("module", "auth"),
		company:     d.Company,
	}
}

// Register creates an unverified identity and mails it a verification code.
// Registering again with the email of an unverified identity only replaces
// the pending code; a verified email is a conflict. The returned profile is
// redacted, since nothing yet proves the caller owns the address.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := models.NormalizeEmail(in.Email)
	if email == "" {
		return nil, common.New(common.KindBadRequest, "email is required")
	}

	var (
		identity *models.Identity
		issued   otp.Issued
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Identities(tx)

		existing, err := repo.FindByEmailForUpdate(ctx, email)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}
		if existing != nil && existing.IsVerified {
			return common.New(common.KindConflict, "email is already registered")
		}
		if err := checkPasswordLength(in.Password); err != nil {
			return err
		}

		issued, err = s.codes.Issue(otp.PurposeEmailVerification)
		if err != nil {
			return err
		}

		if existing != nil {
			identity = existing
			return repo.SetOTP(ctx, existing.ID, issued.Purpose, issued.Hash, issued.ExpiresAt)
		}

		if err := validateProfile(in.Profile); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return err
		}

		fresh := &models.Identity{Email: email, PasswordHash: hash, Role: models.RoleUser}
		in.Profile.Apply(fresh)
		fresh.SetOTP(issued.Purpose, issued.Hash, issued.ExpiresAt)

		identity, err = repo.Create(ctx, fresh)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "identity registered", "identity_id", identity.ID)
	s.sendCode(ctx, identity.Email, notify.KindVerification, issued.Code)

	res, err := s.signIn(identity)
	if err != nil {
		return nil, err
	}
	res.Profile = res.Profile.Redacted()
	return res, nil
}

// Login checks the verification flag before the password, so an unverified
// identity is refused whatever password it presents.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	identity, err := s.find(ctx, email)
	if err != nil {
		return nil, err
	}
	if !identity.IsVerified {
		return nil, errUnverified
	}
	if !s.hasher.Matches(identity.PasswordHash, password) {
		return nil, common.New(common.KindUnauthorized, "invalid password")
	}

	return s.signIn(identity)
}

// RefreshAccessToken mints a new access token for the identity named by a
// valid refresh token. The refresh token itself is not rotated.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	identity, err := s.repomanager.Identities(s.db).FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.Wrap(common.KindUnauthorized, "you are not authorized", err)
		}
		return "", err
	}

	return s.tokens.IssueAccess(identity)
}

// RequestEmailVerification issues a fresh verification code, replacing any
// pending one, and mails it.
func (s *AuthService) RequestEmailVerification(ctx context.Context, email string) error {
	identity, err := s.find(ctx, email)
	if err != nil {
		return err
	}
	if identity.IsVerified {
		return common.New(common.KindConflict, "email is already verified")
	}

	return s.reissue(ctx, identity, otp.PurposeEmailVerification)
}

// ResendEmailOTP is RequestEmailVerification under the name clients use
// for the resend button.
func (s *AuthService) ResendEmailOTP(ctx context.Context, email string) error {
	return s.RequestEmailVerification(ctx, email)
}

// VerifyEmailOTP marks the identity verified and consumes the code in the
// same write.
func (s *AuthService) VerifyEmailOTP(ctx context.Context, email, code string) (*AuthResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, common.New(common.KindBadRequest, "otp is required")
	}

	identity, err := s.consume(ctx, email, code, otp.PurposeEmailVerification, func(i *models.Identity) error {
		if i.IsVerified {
			return common.New(common.KindConflict, "email is already verified")
		}
		i.IsVerified = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccess(identity)
	if err != nil {
		return nil, err
	}
	return &AuthResult{TokenPair: TokenPair{AccessToken: access}, Profile: identity.Profile()}, nil
}

// RequestPasswordReset mails a reset code and returns a reset token scoped
// to the code verification step.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", common.New(common.KindBadRequest, "email is required")
	}

	identity, err := s.find(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.reissue(ctx, identity, otp.PurposePasswordReset); err != nil {
		return "", err
	}

	return s.tokens.IssueReset(identity, auth.ScopeResetPending)
}

func (s *AuthService) ResendResetOTP(ctx context.Context, email string) error {
	identity, err := s.find(ctx, email)
	if err != nil {
		return err
	}
	return s.reissue(ctx, identity, otp.PurposePasswordReset)
}

// VerifyResetOTP consumes the reset code and returns a reset token that
// allows exactly the password reset step.
func (s *AuthService) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", common.New(common.KindBadRequest, "otp is required")
	}

	identity, err := s.consume(ctx, email, code, otp.PurposePasswordReset, nil)
	if err != nil {
		return "", err
	}

	return s.tokens.IssueReset(identity, auth.ScopeResetGranted)
}

// ResetPassword stores a new password and drops every pending code.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (models.PublicProfile, error) {
	if newPassword == "" {
		return models.PublicProfile{}, common.New(common.KindBadRequest, "password is required")
	}
	if err := checkPasswordLength(newPassword); err != nil {
		return models.PublicProfile{}, err
	}

	identity, err := s.updatePassword(ctx, email, newPassword, func(i *models.Identity) error {
		i.ClearOTP(otp.PurposeEmailVerification)
		i.ClearOTP(otp.PurposePasswordReset)
		return nil
	})
	if err != nil {
		return models.PublicProfile{}, err
	}

	s.logger.Info(ctx, "password reset", "identity_id", identity.ID)
	return identity.Profile(), nil
}

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) (models.PublicProfile, error) {
	if currentPassword == "" || newPassword == "" {
		return models.PublicProfile{}, common.New(common.KindBadRequest, "current and new password are required")
	}

	identity, err := s.updatePassword(ctx, email, newPassword, func(i *models.Identity) error {
		if !s.hasher.Matches(i.PasswordHash, currentPassword) {
			return common.New(common.KindBadRequest, "current password is incorrect")
		}
		return checkPasswordLength(newPassword)
	})
	if err != nil {
		return models.PublicProfile{}, err
	}

	s.logger.Info(ctx, "password changed", "identity_id", identity.ID)
	return identity.Profile(), nil
}

// --- helpers below ---

func (s *AuthService) find(ctx context.Context, email string) (*models.Identity, error) {
	identity, err := s.repomanager.Identities(s.db).FindByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Wrap(common.KindNotFound, "user not found", err)
		}
		return nil, err
	}
	return identity, nil
}

// reissue stores a new code of purpose on identity and mails it. Only the
// code slot is written, so identity may be a stale read. The write and the
// send are independent: a failed send leaves the code valid, and the client
// can ask again.
func (s *AuthService) reissue(ctx context.Context, identity *models.Identity, purpose otp.Purpose) error {
	issued, err := s.codes.Issue(purpose)
	if err != nil {
		return err
	}
	if err := s.repomanager.Identities(s.db).SetOTP(ctx, identity.ID, purpose, issued.Hash, issued.ExpiresAt); err != nil {
		return err
	}
	identity.SetOTP(purpose, issued.Hash, issued.ExpiresAt)

	kind := notify.KindVerification
	if purpose == otp.PurposePasswordReset {
		kind = notify.KindPasswordReset
	}
	s.sendCode(ctx, identity.Email, kind, issued.Code)
	return nil
}

// consume verifies code for purpose, lets apply change the identity, and
// clears the code in the same update.
func (s *AuthService) consume(ctx context.Context, email, code string, purpose otp.Purpose, apply func(*models.Identity) error) (*models.Identity, error) {
	var identity *models.Identity
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Identities(tx)

		i, err := repo.FindByEmailForUpdate(ctx, models.NormalizeEmail(email))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.Wrap(common.KindNotFound, "user not found", err)
			}
			return err
		}

		hash, expiresAt := i.PendingOTP(purpose)
		if err := s.codes.Verify(hash, expiresAt, code); err != nil {
			return err
		}
		if apply != nil {
			if err := apply(i); err != nil {
				return err
			}
		}
		i.ClearOTP(purpose)

		identity = i
		return repo.Update(ctx, i)
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *AuthService) updatePassword(ctx context.Context, email, newPassword string, check func(*models.Identity) error) (*models.Identity, error) {
	var identity *models.Identity
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Identities(tx)

		i, err := repo.FindByEmailForUpdate(ctx, models.NormalizeEmail(email))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.Wrap(common.KindNotFound, "user not found", err)
			}
			return err
		}
		if err := check(i); err != nil {
			return err
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return err
		}
		i.PasswordHash = hash

		identity = i
		return repo.Update(ctx, i)
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *AuthService) signIn(identity *models.Identity) (*AuthResult, error) {
	access, err := s.tokens.IssueAccess(identity)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(identity)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &AuthResult{
		TokenPair: TokenPair{AccessToken: access, RefreshToken: refresh},
		Profile:   identity.Profile(),
	}, nil
}

func (s *AuthService) sendCode(ctx context.Context, to, kind, code string) {
	msg, err := notify.OTPEmail(s.company, to, kind, code, otp.TTL, s.codes.Now())
	if err == nil {
		err = s.sender.Send(ctx, msg)
	}
	if err != nil {
		s.logger.Warn(ctx, "otp email not sent", "to", to, "kind", kind, "error", err.Error())
	}
}

func checkPasswordLength(password string) error {
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return common.New(common.KindBadRequest, fmt.Sprintf("password must be at least %d characters", common.MinPasswordLength))
	}
	return nil
}
