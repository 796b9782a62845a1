// Command migrate applies the database schema and creates the optional seed
// user, then exits. It is meant to run as a one-shot job before the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"blog_backend/internal/app/config"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authusecase "blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotEnv(".env")
	cfg := config.Load()
	logging.Setup(os.Stdout, cfg.LogLevel)

	// スキーマ適用はこのジョブの責務なので常に実行
	cfg.DB.RunMigrations = true
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database (%s): %w", cfg.DB.Driver, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if !cfg.Seed.Enabled() {
		slog.Info("migration finished; no seed user configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	authUC := authusecase.NewAuthUsecase(authadapters.NewUserGorm(gdb), jwtmw.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL))
	created, err := authUC.EnsureUser(ctx, cfg.Seed.Name, cfg.Seed.Email, cfg.Seed.Password)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", cfg.Seed.Email, err)
	}
	slog.Info("migration finished", "seed_email", cfg.Seed.Email, "seed_created", created)
	return nil
}
