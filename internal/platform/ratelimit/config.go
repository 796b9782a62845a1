package ratelimit

import (
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Defaults for the login throttle.
const (
	DefaultLimit    = 10
	DefaultInterval = time.Minute
)

// Config はログイン試行の制限設定です。
type Config struct {
	Limit    int
	Interval time.Duration
}

// LoadConfigFromEnv は LOGIN_RATE_LIMIT と LOGIN_RATE_WINDOW を読み込みます。
// 解釈できない値はデフォルトにフォールバックします。
func LoadConfigFromEnv() Config {
	cfg := Config{Limit: DefaultLimit, Interval: DefaultInterval}
	if v, err := strconv.Atoi(os.Getenv("LOGIN_RATE_LIMIT")); err == nil {
		cfg.Limit = v
	}
	if v, err := time.ParseDuration(os.Getenv("LOGIN_RATE_WINDOW")); err == nil {
		cfg.Interval = v
	}
	return cfg
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Limit, validation.Required, validation.Min(1)),
		validation.Field(&c.Interval, validation.Required, validation.Min(time.Second)),
	)
}
