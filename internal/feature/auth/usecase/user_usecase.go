package usecase

import (
	"context"

	"github.com/google/uuid"

	"blog_backend/internal/feature/auth/domain/entity"
)

// UserUsecase provides read access to users.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetByID returns the user with the given ID or ErrUserNotFound.
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
