// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/platform/db/model"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval は接続リトライの待機間隔です。テストで短縮できるよう変数にしています。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定を保持します。
type Config struct {
	Driver     string
	User       string
	Password   string
	Name       string
	Host       string
	Port       string
	SSLMode    string
	SQLitePath string
	// RunMigrations がtrueの場合、起動時にAutoMigrateを実行します。
	RunMigrations bool
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:        os.Getenv("DB_DRIVER"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		SSLMode:       os.Getenv("DB_SSLMODE"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "blog.db"
	}
	return cfg
}

// BuildDSN は設定からPostgreSQL用のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// Opener はDSNからgorm.DBを開く関数です。テスト時に差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は指定されたタイムアウトまで接続をリトライします。
// 次のリトライがタイムアウトを超える場合は待機せずにエラーを返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

func gormConfig() *gorm.Config {
	// TranslateError により一意制約・外部キー違反がgormのエラーに変換されます。
	return &gorm.Config{TranslateError: true}
}

// Open は設定されたドライバーでデータベースに接続し、必要ならマイグレーションを実行します。
func Open(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres:
		db, err = ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		})
	case DriverSQLite:
		db, err = OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		slog.Info("database migrated", "driver", cfg.Driver)
	}
	return db, nil
}

// OpenSQLite はSQLiteデータベースを開き、外部キー制約を有効化します。
// ":memory:" の場合は接続ごとに別DBになるため、接続数を1に制限します。
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// Migrate はすべてのテーブルを作成・更新します。
// 外部キーの参照先を先にマイグレーションします。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&model.Category{},
		&model.Tag{},
		&model.Post{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
