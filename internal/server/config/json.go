package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the shape of the JSON config file. Durations go through
// timex.Duration, so both "15m" and integer nanoseconds are accepted.
// Absent keys leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	LogLevel         string `json:"log_level"`

	AccessTokenSecret            string         `json:"access_token_secret"`
	RefreshTokenSecret           string         `json:"refresh_token_secret"`
	ResetTokenSecret             string         `json:"reset_token_secret"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	ResetTokenValidityDuration   timex.Duration `json:"reset_token_validity_duration"`
	TokenIssuer                  string         `json:"token_issuer"`

	BcryptCost      int      `json:"bcrypt_cost"`
	CipherKey       string   `json:"cipher_key"`
	CipherIV        string   `json:"cipher_iv"`
	EncryptedFields []string `json:"encrypted_fields"`

	Notifier     string   `json:"notifier"`
	KafkaBrokers []string `json:"kafka_brokers"`
	KafkaTopic   string   `json:"kafka_topic"`
	MailFrom     string   `json:"mail_from"`
	CompanyName  string   `json:"company_name"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson loads the file named by -c or -config, if any, into config.
func parseJson(config *Config) error {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	dur := func(dst *time.Duration, v timex.Duration) {
		if v.Duration != 0 {
			*dst = v.Duration
		}
	}
	list := func(dst *[]string, v []string) {
		if v != nil {
			*dst = v
		}
	}

	str(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	str(&config.DatabaseDSN, c.DatabaseDSN)
	str(&config.LogLevel, c.LogLevel)

	str(&config.AccessTokenSecret, c.AccessTokenSecret)
	str(&config.RefreshTokenSecret, c.RefreshTokenSecret)
	str(&config.ResetTokenSecret, c.ResetTokenSecret)
	dur(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	dur(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	dur(&config.ResetTokenValidityDuration, c.ResetTokenValidityDuration)
	str(&config.TokenIssuer, c.TokenIssuer)

	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	str(&config.CipherKey, c.CipherKey)
	str(&config.CipherIV, c.CipherIV)
	list(&config.EncryptedFields, c.EncryptedFields)

	str(&config.Notifier, c.Notifier)
	list(&config.KafkaBrokers, c.KafkaBrokers)
	str(&config.KafkaTopic, c.KafkaTopic)
	str(&config.MailFrom, c.MailFrom)
	str(&config.CompanyName, c.CompanyName)

	str(&config.S3RootUser, c.S3RootUser)
	str(&config.S3RootPassword, c.S3RootPassword)
	str(&config.S3Bucket, c.S3Bucket)
	str(&config.S3Region, c.S3Region)
	str(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}
