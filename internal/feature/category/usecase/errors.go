package usecase

import "errors"

var (
	// ErrDuplicateName is returned when a category with the same name
	// (compared case-insensitively) already exists.
	ErrDuplicateName = errors.New("category name already exists")
	// ErrHasAssociatedPosts is returned when deleting a category that still has posts.
	ErrHasAssociatedPosts = errors.New("category has associated posts")
	// ErrCategoryNotFound is returned when the category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidCategoryName is returned when the name fails validation.
	ErrInvalidCategoryName = errors.New("invalid category name")
)
