// Package entity defines the domain entities for the tag feature.
package entity

import (
	"github.com/google/uuid"

	postentity "blog_backend/internal/feature/post/domain/entity"
)

// Tag labels posts; a post may carry many tags.
type Tag struct {
	ID    uuid.UUID
	Name  string
	Posts []postentity.Post
}
