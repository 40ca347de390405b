package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.BcryptCost = bcrypt.MinCost
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	app, err := NewApp(ctx, testConfig(), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.IsType(t, &notify.LogSender{}, app.sender)
	assert.Contains(t, out.String(), "storage ready")
	assert.Contains(t, out.String(), "successfully migrated database", "goose output goes to the service log")

	res, err := app.auth.Register(ctx, services.RegisterInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", res.Profile.Email)
	assert.Contains(t, out.String(), "email queued")

	_, err = app.profiles.RequestAvatarUpload(ctx, "a@x.com")
	assert.Error(t, err, "avatars are off without a bucket")
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad cipher key", func(c *config.Config) { c.CipherKey = "00" }},
		{"unknown encrypted field", func(c *config.Config) { c.EncryptedFields = []string{"password"} }},
		{"bad bcrypt cost", func(c *config.Config) { c.BcryptCost = 64 }},
		{"shared secrets", func(c *config.Config) { c.RefreshTokenSecret = c.AccessTokenSecret }},
		{"unknown notifier", func(c *config.Config) { c.Notifier = "pigeon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig()
			tt.mutate(c)
			_, err := NewApp(context.Background(), c, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestNewSender(t *testing.T) {
	c := testConfig()

	s, err := newSender(c, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &notify.LogSender{}, s)
	assert.NoError(t, closeSender(s))

	c.Notifier = config.NotifierKafka
	s, err = newSender(c, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &notify.KafkaSender{}, s)
	assert.NoError(t, closeSender(s))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunReportsListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"
	app, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
