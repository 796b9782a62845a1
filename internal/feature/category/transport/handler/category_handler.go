// Package handler exposes the category endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/category/domain/entity"
	"blog_backend/internal/feature/category/usecase"
	postentity "blog_backend/internal/feature/post/domain/entity"
)

// CategoryUsecase is the subset of category operations the handler needs.
type CategoryUsecase interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler handles /categories requests.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// toResponse maps a category to its API form. postCount counts PUBLISHED posts only.
func toResponse(c *entity.Category) api.CategoryResponse {
	return api.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		PostCount: postentity.PublishedCount(c.Posts),
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]api.CategoryResponse, 0, len(cats))
	for i := range cats {
		resp = append(resp, toResponse(&cats[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := api.BindUUIDPath(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	cat, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cat))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req api.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	cat, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("category created", "category_id", cat.ID, "name", cat.Name)
	c.JSON(http.StatusCreated, toResponse(cat))
}

// Delete handles DELETE /categories/{id}. Deleting an unknown id succeeds.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := api.BindUUIDPath(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryName):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
	case errors.Is(err, usecase.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeDuplicateName, Error: err.Error()})
	case errors.Is(err, usecase.ErrHasAssociatedPosts):
		c.JSON(http.StatusConflict, api.ErrorResponse{Code: api.CodeHasAssociatedPosts, Error: err.Error()})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Error: err.Error()})
	default:
		slog.Error("category request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "internal server error"})
	}
}
