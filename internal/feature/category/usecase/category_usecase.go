// Package usecase implements the category business rules: names are unique
// ignoring case, and a category can only be deleted once it has no posts.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"blog_backend/internal/feature/category/domain/entity"
)

// Name length bounds, counted in characters.
const (
	MinNameLength = 2
	MaxNameLength = 50
)

// CategoryRepository abstracts category persistence.
type CategoryRepository interface {
	// List returns all categories ordered by name, with their posts loaded.
	List(ctx context.Context) ([]entity.Category, error)
	// FindByID returns ErrCategoryNotFound when absent. Posts are loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	// CountPosts counts posts of any status filed under the category.
	CountPosts(ctx context.Context, id uuid.UUID) (int64, error)
	// Create returns ErrDuplicateName on a unique violation.
	Create(ctx context.Context, c *entity.Category) error
	// Delete returns ErrHasAssociatedPosts on a foreign key violation.
	// Deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error
}

// CategoryUsecase enforces category consistency on top of the repository.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a CategoryUsecase.
func NewCategoryUsecase(repo CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: repo}
}

// List returns every category with its posts, ordered by name.
func (u *CategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// GetByID returns a single category.
func (u *CategoryUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return u.repo.FindByID(ctx, id)
}

func validateName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.RuneLength(MinNameLength, MaxNameLength),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCategoryName, err)
	}
	return nil
}

// Create adds a category after trimming its name.
// The existence check and the insert share one transaction; the unique
// index on the normalized name still decides races between concurrent calls.
func (u *CategoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	c := &entity.Category{Name: name}
	err := u.repo.Transaction(ctx, func(repo CategoryRepository) error {
		exists, err := repo.ExistsByNameIgnoreCase(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateName
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category that has no posts.
// A missing category is treated as already deleted.
func (u *CategoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Transaction(ctx, func(repo CategoryRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil
			}
			return err
		}
		n, err := repo.CountPosts(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrHasAssociatedPosts
		}
		return repo.Delete(ctx, id)
	})
}
