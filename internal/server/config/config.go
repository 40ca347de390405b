// Package config handles configuration for the server component,
// including defaults, a .env file, JSON overlay, environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
)

const (
	NotifierLog   = "log"
	NotifierKafka = "kafka"
)

// Config holds runtime settings for the gophauth server.
//
// An empty DatabaseDSN selects an in-memory SQLite store. An empty
// S3Bucket disables the avatar operations.
type Config struct {
	EndpointAddrGRPC string `env:"GRPC_ADDR"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	LogLevel         string `env:"LOG_LEVEL"`

	AccessTokenSecret            string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret           string        `env:"REFRESH_TOKEN_SECRET"`
	ResetTokenSecret             string        `env:"RESET_TOKEN_SECRET"`
	AccessTokenValidityDuration  time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"REFRESH_TOKEN_TTL"`
	ResetTokenValidityDuration   time.Duration `env:"RESET_TOKEN_TTL"`
	TokenIssuer                  string        `env:"TOKEN_ISSUER"`

	BcryptCost      int      `env:"BCRYPT_COST"`
	CipherKey       string   `env:"CIPHER_KEY"`
	CipherIV        string   `env:"CIPHER_IV"`
	EncryptedFields []string `env:"ENCRYPTED_FIELDS" envSeparator:","`

	Notifier     string   `env:"NOTIFIER"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`
	MailFrom     string   `env:"MAIL_FROM"`
	CompanyName  string   `env:"COMPANY_NAME"`

	S3RootUser     string `env:"S3_ROOT_USER"`
	S3RootPassword string `env:"S3_ROOT_PASSWORD"`
	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION"`
	S3BaseEndpoint string `env:"S3_BASE_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secrets and cipher material must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.LogLevel = "info"

	c.AccessTokenSecret = "access-secret"
	c.RefreshTokenSecret = "refresh-secret"
	c.ResetTokenSecret = "reset-secret"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.ResetTokenValidityDuration = 10 * time.Minute
	c.TokenIssuer = "gophauth"

	c.BcryptCost = 10
	c.CipherKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	c.CipherIV = "a0a1a2a3a4a5a6a7a8a9aaabacadaeaf"
	c.EncryptedFields = []string{"phone", "street", "location", "postal_code", "date_of_birth"}

	c.Notifier = NotifierLog
	c.KafkaBrokers = []string{"127.0.0.1:9092"}
	c.KafkaTopic = "email-requests"
	c.MailFrom = "no-reply@gophauth.local"
	c.CompanyName = "Gophauth"

	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// AvatarsEnabled reports whether object storage is configured.
func (c *Config) AvatarsEnabled() bool {
	return c.S3Bucket != ""
}

// Validate checks the settings that would otherwise fail late or silently.
func (c *Config) Validate() error {
	var errs []error

	secrets := map[string]string{
		"access":  c.AccessTokenSecret,
		"refresh": c.RefreshTokenSecret,
		"reset":   c.ResetTokenSecret,
	}
	seen := make(map[string]string, len(secrets))
	for _, name := range []string{"access", "refresh", "reset"} {
		s := secrets[name]
		if s == "" {
			errs = append(errs, fmt.Errorf("%s token secret is empty", name))
			continue
		}
		if other, dup := seen[s]; dup {
			errs = append(errs, fmt.Errorf("%s and %s token secrets must differ", other, name))
		}
		seen[s] = name
	}

	ttls := map[string]time.Duration{
		"access":  c.AccessTokenValidityDuration,
		"refresh": c.RefreshTokenValidityDuration,
		"reset":   c.ResetTokenValidityDuration,
	}
	for _, name := range []string{"access", "refresh", "reset"} {
		if ttls[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s token validity must be positive", name))
		}
	}

	if _, err := cryptox.NewPasswordHasher(c.BcryptCost); err != nil {
		errs = append(errs, err)
	}
	if _, err := cryptox.NewFieldCipher(c.CipherKey, c.CipherIV); err != nil {
		errs = append(errs, fmt.Errorf("cipher: %w", err))
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierKafka:
		if len(c.KafkaBrokers) == 0 || c.KafkaTopic == "" {
			errs = append(errs, errors.New("kafka notifier needs brokers and a topic"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notifier %q", c.Notifier))
	}

	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from a .env file, an optional JSON file, the environment and finally
// command-line flags. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
