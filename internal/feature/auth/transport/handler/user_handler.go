package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/security"
)

// UserUsecase はユーザー参照のユースケースを定義します。
type UserUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// UserHandler はユーザー参照のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me は認証済みユーザー自身の情報を返します。
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := security.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.CodeAuthenticationFailed, Error: "authentication required"})
		return
	}
	h.respondUser(c, id.UserID)
}

// GetByID は GET /users/{id} を処理します。
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := api.BindUUIDPath(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	h.respondUser(c, id)
}

func (h *UserHandler) respondUser(c *gin.Context, id uuid.UUID) {
	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Error: err.Error()})
			return
		}
		slog.Error("failed to get user", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}
