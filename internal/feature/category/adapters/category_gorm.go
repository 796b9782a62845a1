// Package adapters はcategoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog_backend/internal/feature/category/domain/entity"
	"blog_backend/internal/feature/category/usecase"
	postentity "blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/db/model"
)

// categoryGorm はCategoryRepositoryのGORM実装です。
type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryGorm はcategoryGormを生成します。
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// List は名前順に全カテゴリーを返します。各カテゴリーの投稿も読み込みます。
func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	var rows []model.Category
	if err := r.db.WithContext(ctx).Order("name_key ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, c := range rows {
		ids = append(ids, c.ID)
	}
	posts, err := r.postsByCategory(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToEntity(nonNil(posts[rows[i].ID])))
	}
	return out, nil
}

// FindByID はIDでカテゴリーを取得します。存在しない場合はErrCategoryNotFoundを返します。
func (r *categoryGorm) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var row model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	posts, err := r.postsByCategory(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return row.ToEntity(nonNil(posts[id])), nil
}

// postsByCategory は指定カテゴリーの投稿をまとめて1クエリで読み込みます。
// postCount の算出に必要な列だけを取得します。
func (r *categoryGorm) postsByCategory(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]postentity.Post, error) {
	grouped := make(map[uuid.UUID][]postentity.Post, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Select("id", "category_id", "author_id", "status", "created_at").
		Where("category_id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("load category posts: %w", err)
	}
	for i := range posts {
		grouped[posts[i].CategoryID] = append(grouped[posts[i].CategoryID], *posts[i].ToEntity())
	}
	return grouped, nil
}

// nonNil marks the association as loaded even when the category has no posts.
func nonNil(posts []postentity.Post) []postentity.Post {
	if posts == nil {
		return []postentity.Post{}
	}
	return posts
}

// ExistsByNameIgnoreCase は大文字小文字を区別せずに同名カテゴリーの有無を返します。
func (r *categoryGorm) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("name_key = ?", model.NameKey(name)).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return n > 0, nil
}

// CountPosts はステータスに関係なくカテゴリーの投稿数を返します。
func (r *categoryGorm) CountPosts(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("category_id = ?", id).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count category posts: %w", err)
	}
	return n, nil
}

// Create はカテゴリーを保存し、生成されたIDと作成日時をcに反映します。
func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	row := model.Category{ID: c.ID, Name: c.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		// name_key の一意制約違反
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateName
		}
		return fmt.Errorf("create category: %w", err)
	}
	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	c.Posts = []postentity.Post{}
	return nil
}

// Delete はカテゴリーを削除します。存在しないIDは何もしません。
func (r *categoryGorm) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error; err != nil {
		// posts.category_id の外部キー (RESTRICT)
		if db.IsForeignKeyViolation(err) {
			return usecase.ErrHasAssociatedPosts
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Transaction はfnを単一トランザクション内で実行します。fnがエラーを返すとロールバックします。
func (r *categoryGorm) Transaction(ctx context.Context, fn func(repo usecase.CategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&categoryGorm{db: tx})
	})
}
