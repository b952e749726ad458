package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// envConfig is a DTO for environment-variable parsing. Unset variables keep
// the zero value and are not copied into the runtime Config.
type envConfig struct {
	EndpointAddrHTTP             string        `env:"HTTP_ADDR"`
	DatabaseDSN                  string        `env:"DATABASE_DSN"`
	AccessSecretKey              string        `env:"JWT_SECRET"`
	RefreshSecretKey             string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenValidityDuration  time.Duration `env:"ACCESS_TOKEN_VALIDITY"`
	RefreshTokenValidityDuration time.Duration `env:"REFRESH_TOKEN_VALIDITY"`
	RefreshTokensPerUser         int           `env:"REFRESH_TOKENS_PER_USER"`
	S3RootUser                   string        `env:"S3_ROOT_USER"`
	S3RootPassword               string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket                     string        `env:"S3_BUCKET"`
	S3Region                     string        `env:"S3_REGION"`
	S3BaseEndpoint               string        `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays environment variables onto the provided Config.
// Malformed values panic: a misconfigured server should not start.
func parseEnv(config *Config) {
	c := &envConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.AccessSecretKey != "" {
		config.AccessSecretKey = c.AccessSecretKey
	}
	if c.RefreshSecretKey != "" {
		config.RefreshSecretKey = c.RefreshSecretKey
	}
	if c.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration
	}
	if c.RefreshTokenValidityDuration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration
	}
	if c.RefreshTokensPerUser != 0 {
		config.RefreshTokensPerUser = c.RefreshTokensPerUser
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
