// Package server wires the configuration, storage, crypto, token and
// notification components into the gRPC service and runs it until a
// signal or context cancellation asks it to stop.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/avatars"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/otp"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/identities"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sender   notify.Sender
	server   *gs.GRPCServer
	auth     *services.AuthService
	profiles *services.ProfileService
}

// NewApp builds every component from c. The database is opened and
// migrated here, so a returned App is ready to serve.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	if out == nil {
		out = os.Stdout
	}
	logger := logging.New(c.LogLevel, out)

	db, dialect, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := build(ctx, c, logger, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, dialect dbx.Dialect) (*App, error) {
	cipher, err := cryptox.NewFieldCipher(c.CipherKey, c.CipherIV)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}
	codec, err := identities.NewFieldCodec(cipher, c.EncryptedFields)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	repos, err := repomanager.NewSQLRepositoryManager(dialect, codec)
	if err != nil {
		return nil, err
	}
	repos.WithLogger(logger)
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	hasher, err := cryptox.NewPasswordHasher(c.BcryptCost)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenService(
		auth.Namespace{Secret: []byte(c.AccessTokenSecret), TTL: c.AccessTokenValidityDuration},
		auth.Namespace{Secret: []byte(c.RefreshTokenSecret), TTL: c.RefreshTokenValidityDuration},
		auth.Namespace{Secret: []byte(c.ResetTokenSecret), TTL: c.ResetTokenValidityDuration},
		auth.WithIssuer(c.TokenIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	sender, err := newSender(c, logger)
	if err != nil {
		return nil, err
	}

	var storage services.AvatarStorage
	if c.AvatarsEnabled() {
		s3, err := avatars.NewS3Storage(ctx, avatars.Config{
			Region:    c.S3Region,
			AccessKey: c.S3RootUser,
			SecretKey: c.S3RootPassword,
			Endpoint:  c.S3BaseEndpoint,
			Bucket:    c.S3Bucket,
		})
		if err != nil {
			closeSender(sender)
			return nil, fmt.Errorf("avatar storage: %w", err)
		}
		storage = s3
	}

	as := services.NewAuthService(services.AuthDeps{
		DB:      db,
		Repos:   repos,
		Tokens:  tokens,
		Codes:   otp.NewEngine(hasher),
		Hasher:  hasher,
		Sender:  sender,
		Logger:  logger,
		Company: c.CompanyName,
	})
	ps := services.NewProfileService(db, repos, storage, logger)

	logger.Info(ctx, "storage ready", "dialect", string(dialect), "encrypted_fields", codec.Fields(), "avatars", c.AvatarsEnabled(), "notifier", c.Notifier)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		sender:   sender,
		server:   gs.NewGRPCServer(c.EndpointAddrGRPC, logger, as, ps, tokens),
		auth:     as,
		profiles: ps,
	}, nil
}

func newSender(c *config.Config, logger logging.Logger) (notify.Sender, error) {
	switch c.Notifier {
	case config.NotifierKafka:
		s, err := notify.NewKafkaSender(c.KafkaBrokers, c.KafkaTopic, c.MailFrom)
		if err != nil {
			return nil, fmt.Errorf("kafka sender: %w", err)
		}
		return s, nil
	case config.NotifierLog, "":
		return notify.NewLogSender(logger), nil
	}
	return nil, fmt.Errorf("unknown notifier %q", c.Notifier)
}

func closeSender(s notify.Sender) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database and the notifier.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Stopping app...")
	return errors.Join(runErr, app.Close())
}

// Close releases the notifier and the database.
func (app *App) Close() error {
	return errors.Join(closeSender(app.sender), app.db.Close())
}
