// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
)

// pingTimeout はDB疎通確認のタイムアウトです。
const pingTimeout = 2 * time.Second

// Pinger はデータベースの疎通確認を行います。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler はHealthHandlerを生成します。dbがnilの場合はDB確認を省略します。
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// DBに到達できない場合は503を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	status, resp := http.StatusOK, api.HealthResponse{Status: "ok", Database: "skipped"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.Error("health check: database unreachable", "error", err)
			status, resp = http.StatusServiceUnavailable, api.HealthResponse{Status: "degraded", Database: "down"}
		} else {
			resp.Database = "up"
		}
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, resp)
}
