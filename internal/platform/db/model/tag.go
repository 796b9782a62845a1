package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	postentity "blog_backend/internal/feature/post/domain/entity"
	tagentity "blog_backend/internal/feature/tag/domain/entity"
)

// Tag is the tags table. Posts reference tags through the post_tags join
// table declared on Post.
type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:50;not null;uniqueIndex"`
}

// BeforeCreate assigns an id when none was set.
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ToEntity converts the model into a domain tag.
// posts is attached as-is, nil meaning "not loaded".
func (t *Tag) ToEntity(posts []postentity.Post) *tagentity.Tag {
	return &tagentity.Tag{ID: t.ID, Name: t.Name, Posts: posts}
}
