// Package jwtmw provides the bearer token service and the Gin middleware
// that turns a token into a request identity.
package jwtmw

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	// EnvKeyJWTSecret names the environment variable holding the HMAC secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTTTL names the environment variable holding the token lifetime.
	EnvKeyJWTTTL = "JWT_TTL"

	// DefaultTTL is the lifetime of an issued token.
	DefaultTTL = 24 * time.Hour

	minSecretLength = 16
)

// Config holds the token signing settings.
type Config struct {
	Secret string
	TTL    time.Duration
}

// LoadConfigFromEnv reads the token settings from the environment.
// An unparsable JWT_TTL falls back to DefaultTTL.
func LoadConfigFromEnv() Config {
	ttl := DefaultTTL
	if v := os.Getenv(EnvKeyJWTTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	return Config{
		Secret: os.Getenv(EnvKeyJWTSecret),
		TTL:    ttl,
	}
}

// Validate checks that the secret is set and long enough and the TTL positive.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Secret, validation.Required, validation.Length(minSecretLength, 0)),
		validation.Field(&c.TTL, validation.Required, validation.Min(time.Second)),
	)
}
