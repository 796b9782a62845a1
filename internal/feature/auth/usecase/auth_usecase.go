// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/platform/security"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyPasswordHash はユーザーが存在しない場合にもbcrypt比較を行うためのハッシュです。
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// TokenService はトークンの発行と検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenService interface {
	// Issue はメールアドレスをsubjectとする署名済みトークンを発行します。
	Issue(email string) (string, time.Time, error)
	// Validate は署名と有効期限を検証し、subjectを返します。
	Validate(token string) (string, error)
	// ExtractSubject は署名を検証せずにsubjectを取り出します。ログ用途のみで、認証判断には使いません。
	ExtractSubject(token string) (string, error)
	// TTL は発行されるトークンの有効期間を返します。
	TTL() time.Duration
}

// AccessToken はログイン成功時に返されるトークンです。
type AccessToken struct {
	Token     string
	ExpiresIn int64 // 秒
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenService
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenService) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// normalizeEmail はメールアドレスの前後の空白を除去し小文字に揃えます。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: string(hashed),
	}
	return u.users.Create(ctx, user)
}

// EnsureUser は指定メールアドレスのユーザーが存在しない場合のみ作成します。
// 起動時のシードユーザー作成に使用します。作成した場合はtrueを返します。
func (u *authUsecase) EnsureUser(ctx context.Context, name, email, password string) (bool, error) {
	_, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}
	if err := u.Signup(ctx, name, email, password); err != nil {
		// 並行起動した別インスタンスが先に作成した場合
		if errors.Is(err, ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// メールアドレスでの検索は1回のみ行い、署名済みトークンを発行します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrAuthenticationFailed
	}

	token, _, tokenErr := u.tokens.Issue(user.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return &AccessToken{
		Token:     token,
		ExpiresIn: int64(u.tokens.TTL() / time.Second),
	}, nil
}

// AuthenticateToken はトークンを検証し、リクエストスコープのIdentityを構築します。
// 検証失敗・ユーザー未検出はいずれもErrAuthenticationFailedになり、security.ErrUnauthenticatedもラップします。
// ストレージ障害はそのまま返します。
func (u *authUsecase) AuthenticateToken(ctx context.Context, token string) (*security.Identity, error) {
	email, err := u.tokens.Validate(token)
	if err != nil {
		if claimed, xerr := u.tokens.ExtractSubject(token); xerr == nil && claimed != "" {
			slog.DebugContext(ctx, "token validation failed", "claimed_subject", claimed)
		}
		return nil, errTokenRejected
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, errTokenRejected
		}
		return nil, err
	}

	return &security.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Authorities: []string{security.AuthorityUser},
	}, nil
}
