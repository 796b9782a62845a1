// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/feature/post/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/db/model"
)

// postGorm はPostRepositoryのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm はpostGormを生成します。
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// query は関連を読み込み、新しい順に並べたベースクエリを返します。
func (r *postGorm) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Post{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("tags.name ASC") }).
		Order("posts.created_at DESC")
}

func (r *postGorm) find(q *gorm.DB) ([]entity.Post, error) {
	var rows []model.Post
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return model.PostsToEntities(rows), nil
}

func withTag(q *gorm.DB, tagID uuid.UUID) *gorm.DB {
	return q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID)
}

// ListByStatus は指定ステータスの投稿を返します。
func (r *postGorm) ListByStatus(ctx context.Context, status entity.PostStatus) ([]entity.Post, error) {
	return r.find(r.query(ctx).Where("posts.status = ?", string(status)))
}

// ListByStatusAndCategory は指定ステータス・カテゴリーの投稿を返します。
func (r *postGorm) ListByStatusAndCategory(ctx context.Context, status entity.PostStatus, categoryID uuid.UUID) ([]entity.Post, error) {
	return r.find(r.query(ctx).
		Where("posts.status = ? AND posts.category_id = ?", string(status), categoryID))
}

// ListByStatusAndTag は指定ステータスでタグを含む投稿を返します。
func (r *postGorm) ListByStatusAndTag(ctx context.Context, status entity.PostStatus, tagID uuid.UUID) ([]entity.Post, error) {
	return r.find(withTag(r.query(ctx), tagID).
		Where("posts.status = ?", string(status)))
}

// ListByStatusCategoryAndTag はステータス・カテゴリー・タグすべてに一致する投稿を返します。
func (r *postGorm) ListByStatusCategoryAndTag(ctx context.Context, status entity.PostStatus, categoryID, tagID uuid.UUID) ([]entity.Post, error) {
	return r.find(withTag(r.query(ctx), tagID).
		Where("posts.status = ? AND posts.category_id = ?", string(status), categoryID))
}

// ListByAuthorAndStatus は著者の指定ステータスの投稿を返します。
func (r *postGorm) ListByAuthorAndStatus(ctx context.Context, authorID uuid.UUID, status entity.PostStatus) ([]entity.Post, error) {
	return r.find(r.query(ctx).
		Where("posts.author_id = ? AND posts.status = ?", authorID, string(status)))
}

// FindByID はIDで投稿を取得します。存在しない場合はErrPostNotFoundを返します。
func (r *postGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var row model.Post
	if err := r.query(ctx).Where("posts.id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return row.ToEntity(), nil
}

// Create は投稿とタグの関連を1トランザクションで保存します。
func (r *postGorm) Create(ctx context.Context, p *entity.Post, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Category{}).Where("id = ?", p.CategoryID).Count(&n).Error; err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if n == 0 {
			return usecase.ErrUnknownCategory
		}

		var tags []model.Tag
		if len(tagIDs) > 0 {
			if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
				return fmt.Errorf("load tags: %w", err)
			}
			if len(tags) != len(tagIDs) {
				return usecase.ErrUnknownTag
			}
		}

		row := model.Post{
			ID:          p.ID,
			Title:       p.Title,
			Content:     p.Content,
			Status:      string(p.Status),
			ReadingTime: p.ReadingTime,
			AuthorID:    p.AuthorID,
			CategoryID:  p.CategoryID,
			Tags:        tags,
		}
		if err := tx.Omit("Author", "Category").Create(&row).Error; err != nil {
			if db.IsForeignKeyViolation(err) {
				return usecase.ErrUnknownCategory
			}
			return fmt.Errorf("create post: %w", err)
		}
		p.ID = row.ID
		p.CreatedAt = row.CreatedAt
		p.UpdatedAt = row.UpdatedAt
		return nil
	})
}
