package services

import (
	"context"
	"database/sql"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/otp"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/identities"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testIV  = "a0a1a2a3a4a5a6a7a8a9aaabacadaeaf"
)

var codeRe = regexp.MustCompile(`>(\d{6})<`)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type capturingSender struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (c *capturingSender) Send(ctx context.Context, m notify.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, m)
	return nil
}

func (c *capturingSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// lastCode returns the code of the most recent message.
func (c *capturingSender) lastCode(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.msgs, "no email was sent")
	m := codeRe.FindStringSubmatch(c.msgs[len(c.msgs)-1].Body)
	require.Len(t, m, 2, "no code in email body")
	return m[1]
}

func (c *capturingSender) last(t *testing.T) notify.Message {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.msgs)
	return c.msgs[len(c.msgs)-1]
}

type testEnv struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	clock    *testClock
	sender   *capturingSender
	tokens   *auth.TokenService
	svc      *AuthService
	profiles *ProfileService
	avatars  *fakeAvatars
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := repomanager.Open(ctx, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cipher, err := cryptox.NewFieldCipher(testKey, testIV)
	require.NoError(t, err)
	codec, err := identities.NewFieldCodec(cipher, []string{"phone", "street", "location", "postal_code", "date_of_birth"})
	require.NoError(t, err)

	repos, err := repomanager.NewSQLRepositoryManager(dialect, codec)
	require.NoError(t, err)
	require.NoError(t, repos.RunMigrations(ctx, db))

	clock := &testClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	hasher, err := cryptox.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	tokens, err := auth.NewTokenService(
		auth.Namespace{Secret: []byte("access-secret"), TTL: 15 * time.Minute},
		auth.Namespace{Secret: []byte("refresh-secret"), TTL: 7 * 24 * time.Hour},
		auth.Namespace{Secret: []byte("reset-secret"), TTL: 10 * time.Minute},
		auth.WithClock(clock.Now),
	)
	require.NoError(t, err)

	sender := &capturingSender{}
	avatars := newFakeAvatars()

	return &testEnv{
		db:     db,
		repos:  repos,
		clock:  clock,
		sender: sender,
		tokens: tokens,
		svc: NewAuthService(AuthDeps{
			DB:      db,
			Repos:   repos,
			Tokens:  tokens,
			Codes:   otp.NewEngine(hasher, otp.WithClock(clock.Now)),
			Hasher:  hasher,
			Sender:  sender,
			Logger:  logging.Nop(),
			Company: "Acme",
		}),
		profiles: NewProfileService(db, repos, avatars, logging.Nop()),
		avatars:  avatars,
	}
}

// registerVerified registers email and completes verification.
func (e *testEnv) registerVerified(t *testing.T, email, password string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.svc.Register(ctx, RegisterInput{Email: email, Password: password})
	require.NoError(t, err)
	_, err = e.svc.VerifyEmailOTP(ctx, email, e.sender.lastCode(t))
	require.NoError(t, err)
}

type fakeAvatars struct {
	mu        sync.Mutex
	deleted   []string
	deleteErr error
	putErr    error
}

func newFakeAvatars() *fakeAvatars { return &fakeAvatars{} }

func (f *fakeAvatars) PresignUpload(ctx context.Context, key string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	return "https://s3.local/put/" + key, nil
}

func (f *fakeAvatars) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://s3.local/get/" + key, nil
}

func (f *fakeAvatars) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}
