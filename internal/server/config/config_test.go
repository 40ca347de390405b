package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

// setArgs replaces os.Args for the duration of the test.
func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, 10*time.Minute, c.ResetTokenValidityDuration)
	assert.Equal(t, NotifierLog, c.Notifier)
	assert.False(t, c.AvatarsEnabled())
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty access secret", func(c *Config) { c.AccessTokenSecret = "" }, false},
		{"shared secrets", func(c *Config) { c.ResetTokenSecret = c.AccessTokenSecret }, false},
		{"zero refresh ttl", func(c *Config) { c.RefreshTokenValidityDuration = 0 }, false},
		{"bcrypt cost too high", func(c *Config) { c.BcryptCost = 99 }, false},
		{"short cipher key", func(c *Config) { c.CipherKey = "0011" }, false},
		{"bad cipher iv", func(c *Config) { c.CipherIV = "zz" }, false},
		{"unknown notifier", func(c *Config) { c.Notifier = "pigeon" }, false},
		{"kafka without topic", func(c *Config) { c.Notifier = NotifierKafka; c.KafkaTopic = "" }, false},
		{"kafka", func(c *Config) { c.Notifier = NotifierKafka }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(".env", []byte("GOPHAUTH_COMPANY_NAME=FromDotEnv\nGOPHAUTH_KAFKA_TOPIC=dotenv-topic\n"), 0o600))
	jsonPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"endpoint_addr_grpc": ":7000",
		"database_dsn": "file:from-json.db",
		"mail_from": "json@x.com",
		"reset_token_validity_duration": "3m"
	}`), 0o600))

	t.Setenv("GOPHAUTH_DATABASE_DSN", "postgres://env")
	t.Setenv("GOPHAUTH_ENCRYPTED_FIELDS", "phone,street")
	t.Setenv("GOPHAUTH_ACCESS_TOKEN_TTL", "20m")
	t.Setenv("GOPHAUTH_KAFKA_TOPIC", "env-topic")

	setArgs(t, "-c", jsonPath, "-a", ":9000", "-t", "5", "-unknown", "x")
	t.Cleanup(func() { _ = os.Unsetenv("GOPHAUTH_COMPANY_NAME") })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	want := defaults()
	want.EndpointAddrGRPC = ":9000"
	want.DatabaseDSN = "postgres://env"
	want.MailFrom = "json@x.com"
	want.ResetTokenValidityDuration = 3 * time.Minute
	want.AccessTokenValidityDuration = 5 * time.Minute
	want.EncryptedFields = []string{"phone", "street"}
	want.CompanyName = "FromDotEnv"
	want.KafkaTopic = "env-topic"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOPHAUTH_NOTIFIER", "pigeon")
	setArgs(t)

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown notifier")
}

func TestLoadConfig_BadJSON(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	setArgs(t, "-config", path)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_MissingJSON(t *testing.T) {
	chdir(t, t.TempDir())
	setArgs(t, "-c", "does-not-exist.json")

	_, err := LoadConfig()
	assert.Error(t, err)
}
