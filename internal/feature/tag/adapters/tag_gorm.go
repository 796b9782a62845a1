// Package adapters はtagフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	postentity "blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/tag/domain/entity"
	"blog_backend/internal/feature/tag/usecase"
	"blog_backend/internal/platform/db/model"
)

// tagGorm はTagRepositoryのGORM実装です。
type tagGorm struct {
	db *gorm.DB
}

var _ usecase.TagRepository = (*tagGorm)(nil)

// NewTagGorm はtagGormを生成します。
func NewTagGorm(db *gorm.DB) *tagGorm {
	return &tagGorm{db: db}
}

// tagPost は post_tags と posts の結合結果の1行です。
type tagPost struct {
	TagID  uuid.UUID
	ID     uuid.UUID
	Status string
}

// List は名前順に全タグを返します。各タグの投稿も読み込みます。
func (r *tagGorm) List(ctx context.Context) ([]entity.Tag, error) {
	var rows []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	var links []tagPost
	err := r.db.WithContext(ctx).
		Table("post_tags").
		Select("post_tags.tag_id AS tag_id, posts.id AS id, posts.status AS status").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Scan(&links).Error
	if err != nil {
		return nil, fmt.Errorf("load tag posts: %w", err)
	}
	grouped := make(map[uuid.UUID][]postentity.Post, len(rows))
	for _, l := range links {
		grouped[l.TagID] = append(grouped[l.TagID], postentity.Post{ID: l.ID, Status: postentity.PostStatus(l.Status)})
	}

	out := make([]entity.Tag, 0, len(rows))
	for i := range rows {
		posts := grouped[rows[i].ID]
		if posts == nil {
			posts = []postentity.Post{}
		}
		out = append(out, *rows[i].ToEntity(posts))
	}
	return out, nil
}
