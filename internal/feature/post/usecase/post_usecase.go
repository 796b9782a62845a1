// Package usecase provides post queries and post creation.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blog_backend/internal/feature/post/domain/entity"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

// PostRepository abstracts post persistence. Every list method returns posts
// newest first with author, category and tags loaded.
type PostRepository interface {
	ListByStatus(ctx context.Context, status entity.PostStatus) ([]entity.Post, error)
	ListByStatusAndCategory(ctx context.Context, status entity.PostStatus, categoryID uuid.UUID) ([]entity.Post, error)
	ListByStatusAndTag(ctx context.Context, status entity.PostStatus, tagID uuid.UUID) ([]entity.Post, error)
	ListByStatusCategoryAndTag(ctx context.Context, status entity.PostStatus, categoryID, tagID uuid.UUID) ([]entity.Post, error)
	ListByAuthorAndStatus(ctx context.Context, authorID uuid.UUID, status entity.PostStatus) ([]entity.Post, error)
	// FindByID returns ErrPostNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	// Create stores p and links it to tagIDs. It returns ErrUnknownCategory or
	// ErrUnknownTag when a reference does not resolve.
	Create(ctx context.Context, p *entity.Post, tagIDs []uuid.UUID) error
}

// PostFilter narrows the published post listing. Nil fields are ignored.
type PostFilter struct {
	CategoryID *uuid.UUID
	TagID      *uuid.UUID
}

// NewPost is the input of Create.
type NewPost struct {
	Title      string
	Content    string
	CategoryID uuid.UUID
	TagIDs     []uuid.UUID
	Status     entity.PostStatus
}

// PostUsecase implements the post operations.
type PostUsecase struct {
	repo PostRepository
}

// NewPostUsecase creates a PostUsecase.
func NewPostUsecase(repo PostRepository) *PostUsecase {
	return &PostUsecase{repo: repo}
}

// ListPublished returns published posts matching f.
func (u *PostUsecase) ListPublished(ctx context.Context, f PostFilter) ([]entity.Post, error) {
	status := entity.PostStatusPublished
	switch {
	case f.CategoryID != nil && f.TagID != nil:
		return u.repo.ListByStatusCategoryAndTag(ctx, status, *f.CategoryID, *f.TagID)
	case f.CategoryID != nil:
		return u.repo.ListByStatusAndCategory(ctx, status, *f.CategoryID)
	case f.TagID != nil:
		return u.repo.ListByStatusAndTag(ctx, status, *f.TagID)
	default:
		return u.repo.ListByStatus(ctx, status)
	}
}

// ListDrafts returns the drafts written by authorID.
func (u *PostUsecase) ListDrafts(ctx context.Context, authorID uuid.UUID) ([]entity.Post, error) {
	return u.repo.ListByAuthorAndStatus(ctx, authorID, entity.PostStatusDraft)
}

// GetByID returns a post. Drafts are only visible to their author; anyone
// else, including anonymous viewers (viewer nil), gets ErrPostNotFound.
func (u *PostUsecase) GetByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entity.Post, error) {
	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.PostStatusPublished && (viewer == nil || *viewer != p.AuthorID) {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create stores a new post written by authorID.
func (u *PostUsecase) Create(ctx context.Context, authorID uuid.UUID, in NewPost) (*entity.Post, error) {
	if !in.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	p := &entity.Post{
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Status:      in.Status,
		ReadingTime: ReadingTime(in.Content),
		AuthorID:    authorID,
		CategoryID:  in.CategoryID,
	}
	if err := u.repo.Create(ctx, p, dedupe(in.TagIDs)); err != nil {
		return nil, err
	}
	// reload so the response carries author, category and tags
	return u.repo.FindByID(ctx, p.ID)
}

// ReadingTime estimates minutes to read content, rounded up, at least 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
