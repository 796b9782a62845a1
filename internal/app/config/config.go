// Package config はアプリケーション全体の設定を環境変数から組み立てます。
package config

import (
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/joho/godotenv"

	"blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/ratelimit"
	"blog_backend/internal/platform/redis"
)

// DefaultAllowedOrigins are the browser origins of the local frontends.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// SeedUser is an optional account created at startup.
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

// Enabled reports whether a seed user was configured.
func (s SeedUser) Enabled() bool {
	return s.Email != "" && s.Password != ""
}

// Config aggregates the configuration of every component.
type Config struct {
	Port           string
	AllowedOrigins []string
	// TrustedProxies are the proxy addresses/CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the connection's peer address.
	TrustedProxies []string
	LogLevel       string

	JWT       jwtmw.Config
	DB        db.Config
	Redis     redis.Config
	RateLimit ratelimit.Config
	Seed      SeedUser
}

// LoadDotEnv は.envを読み込みます。存在しない場合はシステムの環境変数を使用します。
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Info(".env not found; using system environment variables", "path", path)
	}
}

// Load は環境変数から設定を組み立てます。
func Load() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		JWT:            jwtmw.LoadConfigFromEnv(),
		DB:             db.LoadConfigFromEnv(),
		Redis:          redis.LoadConfigFromEnv(),
		RateLimit:      ratelimit.LoadConfigFromEnv(),
		Seed: SeedUser{
			Name:     os.Getenv("SEED_USER_NAME"),
			Email:    os.Getenv("SEED_USER_EMAIL"),
			Password: os.Getenv("SEED_USER_PASSWORD"),
		},
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultAllowedOrigins
	}
	if cfg.Seed.Name == "" {
		cfg.Seed.Name = "Test User"
	}
	return cfg
}

// Validate は各コンポーネントの設定を検証します。
func (c Config) Validate() error {
	return validation.Errors{
		"port":      validation.Validate(c.Port, validation.Required),
		"driver":    validation.Validate(c.DB.Driver, validation.In(db.DriverPostgres, db.DriverSQLite)),
		"jwt":       c.JWT.Validate(),
		"ratelimit": c.RateLimit.Validate(),
		"seed":      c.Seed.validate(),
	}.Filter()
}

func (s SeedUser) validate() error {
	if s.Email == "" {
		return nil
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, is.Email),
		validation.Field(&s.Password, validation.Required, validation.Length(8, 0)),
	)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
