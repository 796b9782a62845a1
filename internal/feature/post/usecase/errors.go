package usecase

import "errors"

var (
	// ErrPostNotFound is returned when the post does not exist or is not visible to the caller.
	ErrPostNotFound = errors.New("post not found")
	// ErrUnknownCategory is returned when a new post references a missing category.
	ErrUnknownCategory = errors.New("category does not exist")
	// ErrUnknownTag is returned when a new post references a missing tag.
	ErrUnknownTag = errors.New("tag does not exist")
	// ErrInvalidStatus is returned for a status other than DRAFT or PUBLISHED.
	ErrInvalidStatus = errors.New("invalid post status")
)
