// Package handler exposes the post endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/post/usecase"
	"blog_backend/internal/platform/security"
)

// PostUsecase is the subset of post operations the handler needs.
type PostUsecase interface {
	ListPublished(ctx context.Context, f usecase.PostFilter) ([]entity.Post, error)
	ListDrafts(ctx context.Context, authorID uuid.UUID) ([]entity.Post, error)
	GetByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entity.Post, error)
	Create(ctx context.Context, authorID uuid.UUID, in usecase.NewPost) (*entity.Post, error)
}

// PostHandler handles /posts requests.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

func toResponse(p *entity.Post) api.PostResponse {
	resp := api.PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Status:      string(p.Status),
		ReadingTime: p.ReadingTime,
		Tags:        make([]api.TagRefResponse, 0, len(p.Tags)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Author != nil {
		resp.Author = &api.AuthorResponse{ID: p.Author.ID, Name: p.Author.Name}
	}
	if p.Category != nil {
		resp.Category = &api.CategoryRefResponse{ID: p.Category.ID, Name: p.Category.Name}
	}
	for _, t := range p.Tags {
		resp.Tags = append(resp.Tags, api.TagRefResponse{ID: t.ID, Name: t.Name})
	}
	return resp
}

func toResponses(posts []entity.Post) []api.PostResponse {
	out := make([]api.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toResponse(&posts[i]))
	}
	return out
}

// List handles GET /posts?categoryId=&tagId=.
func (h *PostHandler) List(c *gin.Context) {
	categoryID, err := api.BindUUIDQuery(c, "categoryId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	tagID, err := api.BindUUIDQuery(c, "tagId")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	posts, err := h.posts.ListPublished(c.Request.Context(), usecase.PostFilter{CategoryID: categoryID, TagID: tagID})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(posts))
}

// Drafts handles GET /posts/drafts. The route is public under the GET
// /posts/** rule, so the handler requires an identity itself.
func (h *PostHandler) Drafts(c *gin.Context) {
	id, ok := security.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.CodeAuthenticationFailed, Error: "authentication required"})
		return
	}
	posts, err := h.posts.ListDrafts(c.Request.Context(), id.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(posts))
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(c *gin.Context) {
	postID, err := api.BindUUIDPath(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	var viewer *uuid.UUID
	if id, ok := security.CurrentIdentity(c); ok {
		viewer = &id.UserID
	}
	p, err := h.posts.GetByID(c.Request.Context(), postID, viewer)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(p))
}

// Create handles POST /posts. The caller becomes the author.
func (h *PostHandler) Create(c *gin.Context) {
	id, ok := security.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.CodeAuthenticationFailed, Error: "authentication required"})
		return
	}
	var req api.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
		return
	}
	p, err := h.posts.Create(c.Request.Context(), id.UserID, usecase.NewPost{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		Status:     entity.PostStatus(req.Status),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	slog.Info("post created", "post_id", p.ID, "author_id", id.UserID, "status", p.Status)
	c.JSON(http.StatusCreated, toResponse(p))
}

func (h *PostHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Error: err.Error()})
	case errors.Is(err, usecase.ErrUnknownCategory),
		errors.Is(err, usecase.ErrUnknownTag),
		errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeInvalidRequest, Error: err.Error()})
	default:
		slog.Error("post request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Error: "internal server error"})
	}
}
