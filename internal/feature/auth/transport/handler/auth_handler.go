// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, name, email, password string) error
	// Login はユーザーを認証し、成功時にアクセストークンを返します。
	Login(ctx context.Context, email, password string) (*usecase.AccessToken, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Code: api.CodeEmailAlreadyExists, Error: err.Error()})
			return
		}
		slog.Error("signup failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（メールの存在有無は区別しない）
// - 認証成功時はトークンと有効秒数付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthenticationFailed) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{
				Code:  api.CodeAuthenticationFailed,
				Error: usecase.ErrAuthenticationFailed.Error(),
			})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "login failed"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{Token: token.Token, ExpiresIn: token.ExpiresIn})
}
