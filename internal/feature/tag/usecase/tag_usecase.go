// Package usecase provides tag queries.
package usecase

import (
	"context"

	"blog_backend/internal/feature/tag/domain/entity"
)

// TagRepository abstracts tag persistence.
type TagRepository interface {
	// List returns all tags ordered by name, with their posts loaded.
	List(ctx context.Context) ([]entity.Tag, error)
}

// TagUsecase lists tags.
type TagUsecase struct {
	repo TagRepository
}

// NewTagUsecase creates a TagUsecase.
func NewTagUsecase(repo TagRepository) *TagUsecase {
	return &TagUsecase{repo: repo}
}

// List returns every tag with its posts.
func (u *TagUsecase) List(ctx context.Context) ([]entity.Tag, error) {
	return u.repo.List(ctx)
}
