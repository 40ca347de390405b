package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_grpc":              "www.example:9000",
		"database_dsn":                    "postgres://db",
		"access_token_secret":             "a",
		"refresh_token_secret":            "b",
		"reset_token_secret":              "c",
		"access_token_validity_duration":  "1m",
		"refresh_token_validity_duration": 3 * int64(time.Minute),
		"bcrypt_cost":                     12,
		"encrypted_fields":                []string{"phone"},
		"notifier":                        "kafka",
		"kafka_brokers":                   []string{"k1:9092", "k2:9092"},
		"s3_bucket":                       "bucket",
	})

	t.Run("loads from json", func(t *testing.T) {
		setArgs(t, "-config", path)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "a", cfg.AccessTokenSecret)
		assert.Equal(t, time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, 3*time.Minute, cfg.RefreshTokenValidityDuration)
		assert.Equal(t, 10*time.Minute, cfg.ResetTokenValidityDuration, "absent keys keep defaults")
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, []string{"phone"}, cfg.EncryptedFields)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
		assert.True(t, cfg.AvatarsEnabled())
		assert.Equal(t, "us-east-1", cfg.S3Region)
	})

	t.Run("no flag, no file", func(t *testing.T) {
		setArgs(t)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("short flag", func(t *testing.T) {
		setArgs(t, "-c", path)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
	})
}
