// Package entity defines the domain entities for the category feature.
package entity

import (
	"time"

	"github.com/google/uuid"

	postentity "blog_backend/internal/feature/post/domain/entity"
)

// Category groups posts under a case-insensitively unique name.
type Category struct {
	ID   uuid.UUID
	Name string

	// Posts is a back-reference to the posts filed under the category.
	// It is nil when the association was not loaded.
	Posts []postentity.Post

	CreatedAt time.Time
}
