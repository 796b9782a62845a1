package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/config"
	"blog_backend/internal/app/di"
	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	categoryadapters "blog_backend/internal/feature/category/adapters"
	categoryhandler "blog_backend/internal/feature/category/transport/handler"
	categoryusecase "blog_backend/internal/feature/category/usecase"
	postadapters "blog_backend/internal/feature/post/adapters"
	posthandler "blog_backend/internal/feature/post/transport/handler"
	postusecase "blog_backend/internal/feature/post/usecase"
	tagadapters "blog_backend/internal/feature/tag/adapters"
	taghandler "blog_backend/internal/feature/tag/transport/handler"
	tagusecase "blog_backend/internal/feature/tag/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/logging"
	infraredis "blog_backend/internal/platform/redis"
	"blog_backend/internal/platform/security"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .envを読み込む
	config.LoadDotEnv(".env")
	cfg := config.Load()
	logging.Setup(os.Stdout, cfg.LogLevel)

	// JWT_SECRETチェック
	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret before starting the server.")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// db
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database (%s): %w", cfg.DB.Driver, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis（任意）。未設定・接続失敗時はプロセス内のログイン制限で動作
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(context.Background(), cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Falling back to in-memory login throttle.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)
	categoryRepo := categoryadapters.NewCategoryGorm(gdb)
	tagRepo := tagadapters.NewTagGorm(gdb)
	postRepo := postadapters.NewPostGorm(gdb)

	// Usecase
	tokens := jwtmw.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	userUC := authusecase.NewUserUsecase(userRepo)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	tagUC := tagusecase.NewTagUsecase(tagRepo)
	postUC := postusecase.NewPostUsecase(postRepo)

	// 初期ユーザー（SEED_USER_EMAIL / SEED_USER_PASSWORD 設定時のみ）
	if cfg.Seed.Enabled() {
		created, err := authUC.EnsureUser(context.Background(), cfg.Seed.Name, cfg.Seed.Email, cfg.Seed.Password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", cfg.Seed.Email, err)
		}
		if created {
			slog.Info("seed user created", "email", cfg.Seed.Email)
		}
	}

	// Handler
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		User:     authhandler.NewUserHandler(userUC),
		Category: categoryhandler.NewCategoryHandler(categoryUC),
		Tag:      taghandler.NewTagHandler(tagUC),
		Post:     posthandler.NewPostHandler(postUC),
		Health:   handler.NewHealthHandler(sqlDB),
	}

	// ルータ生成
	r := router.NewRouter(handlers, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		Authenticator:  authUC,
		LoginLimiter:   di.NewLoginLimiter(rdb, cfg.RateLimit),
		Policy:         security.DefaultPolicy(),
	})

	slog.Info("server starting", "port", cfg.Port, "db_driver", cfg.DB.Driver, "redis", rdb != nil)
	return r.Run(":" + cfg.Port)
}
