// Package handler exposes the tag endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	postentity "blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/tag/domain/entity"
)

// TagUsecase lists tags.
type TagUsecase interface {
	List(ctx context.Context) ([]entity.Tag, error)
}

// TagHandler handles /tags requests.
type TagHandler struct {
	tags TagUsecase
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(tags TagUsecase) *TagHandler {
	return &TagHandler{tags: tags}
}

// List handles GET /tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list tags", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "internal server error"})
		return
	}
	resp := make([]api.TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, api.TagResponse{
			ID:        t.ID,
			Name:      t.Name,
			PostCount: postentity.PublishedCount(t.Posts),
		})
	}
	c.JSON(http.StatusOK, resp)
}
