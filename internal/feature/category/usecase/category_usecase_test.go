package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/category/domain/entity"
)

// mockCategoryRepository is a function-field mock of CategoryRepository.
// Transaction runs fn against the mock itself and counts invocations.
type mockCategoryRepository struct {
	ListFunc                   func(ctx context.Context) ([]entity.Category, error)
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ExistsByNameIgnoreCaseFunc func(ctx context.Context, name string) (bool, error)
	CountPostsFunc             func(ctx context.Context, id uuid.UUID) (int64, error)
	CreateFunc                 func(ctx context.Context, c *entity.Category) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error

	transactions int
	deleted      []uuid.UUID
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrCategoryNotFound
}

func (m *mockCategoryRepository) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameIgnoreCaseFunc != nil {
		return m.ExistsByNameIgnoreCaseFunc(ctx, name)
	}
	return false, nil
}

func (m *mockCategoryRepository) CountPosts(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.CountPostsFunc != nil {
		return m.CountPostsFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = uuid.New()
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error {
	m.transactions++
	return fn(m)
}

func TestCategoryUsecase_Create(t *testing.T) {
	t.Run("trims and creates inside a transaction", func(t *testing.T) {
		var checked string
		repo := &mockCategoryRepository{
			ExistsByNameIgnoreCaseFunc: func(ctx context.Context, name string) (bool, error) {
				checked = name
				return false, nil
			},
		}
		uc := NewCategoryUsecase(repo)

		c, err := uc.Create(context.Background(), "  Tech  ")

		require.NoError(t, err)
		assert.Equal(t, "Tech", c.Name)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, "Tech", checked)
		assert.Equal(t, 1, repo.transactions)
	})

	t.Run("existing name is rejected before insert", func(t *testing.T) {
		repo := &mockCategoryRepository{
			ExistsByNameIgnoreCaseFunc: func(ctx context.Context, name string) (bool, error) {
				return strings.EqualFold(name, "tech"), nil
			},
			CreateFunc: func(ctx context.Context, c *entity.Category) error {
				t.Error("Create must not be called")
				return nil
			},
		}
		uc := NewCategoryUsecase(repo)

		c, err := uc.Create(context.Background(), "TECH")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("storage unique violation surfaces as duplicate", func(t *testing.T) {
		repo := &mockCategoryRepository{
			CreateFunc: func(ctx context.Context, c *entity.Category) error {
				return ErrDuplicateName
			},
		}
		uc := NewCategoryUsecase(repo)

		_, err := uc.Create(context.Background(), "Tech")

		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "a", strings.Repeat("x", 51)} {
			repo := &mockCategoryRepository{}
			uc := NewCategoryUsecase(repo)

			_, err := uc.Create(context.Background(), name)

			assert.ErrorIs(t, err, ErrInvalidCategoryName, "name %q", name)
			assert.Zero(t, repo.transactions)
		}
	})

	t.Run("boundary lengths are accepted", func(t *testing.T) {
		for _, name := range []string{"Go", strings.Repeat("日", 50)} {
			_, err := NewCategoryUsecase(&mockCategoryRepository{}).Create(context.Background(), name)
			assert.NoError(t, err, "name %q", name)
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		dbErr := errors.New("db down")
		repo := &mockCategoryRepository{
			ExistsByNameIgnoreCaseFunc: func(ctx context.Context, name string) (bool, error) {
				return false, dbErr
			},
		}

		_, err := NewCategoryUsecase(repo).Create(context.Background(), "Tech")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCategoryUsecase_Delete(t *testing.T) {
	id := uuid.New()
	found := func(ctx context.Context, got uuid.UUID) (*entity.Category, error) {
		return &entity.Category{ID: got, Name: "Tech"}, nil
	}

	t.Run("empty category is deleted", func(t *testing.T) {
		repo := &mockCategoryRepository{FindByIDFunc: found}

		err := NewCategoryUsecase(repo).Delete(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, repo.deleted)
		assert.Equal(t, 1, repo.transactions)
	})

	t.Run("missing category is a no-op", func(t *testing.T) {
		repo := &mockCategoryRepository{}

		err := NewCategoryUsecase(repo).Delete(context.Background(), id)

		assert.NoError(t, err)
		assert.Empty(t, repo.deleted)
	})

	t.Run("posts of any status block deletion", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindByIDFunc: found,
			CountPostsFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 1, nil
			},
		}

		err := NewCategoryUsecase(repo).Delete(context.Background(), id)

		assert.ErrorIs(t, err, ErrHasAssociatedPosts)
		assert.Empty(t, repo.deleted)
	})

	t.Run("storage foreign key violation surfaces as has posts", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindByIDFunc: found,
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				return ErrHasAssociatedPosts
			},
		}

		err := NewCategoryUsecase(repo).Delete(context.Background(), id)

		assert.ErrorIs(t, err, ErrHasAssociatedPosts)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		dbErr := errors.New("db down")
		repo := &mockCategoryRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
				return nil, dbErr
			},
		}

		err := NewCategoryUsecase(repo).Delete(context.Background(), id)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCategoryUsecase_Queries(t *testing.T) {
	cats := []entity.Category{{ID: uuid.New(), Name: "A"}, {ID: uuid.New(), Name: "B"}}
	repo := &mockCategoryRepository{
		ListFunc: func(ctx context.Context) ([]entity.Category, error) { return cats, nil },
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
			if id == cats[0].ID {
				return &cats[0], nil
			}
			return nil, ErrCategoryNotFound
		},
	}
	uc := NewCategoryUsecase(repo)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cats, got)

	c, err := uc.GetByID(context.Background(), cats[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "A", c.Name)

	_, err = uc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
