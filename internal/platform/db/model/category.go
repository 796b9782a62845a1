// Package model defines the GORM persistence models shared by the feature adapters.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	categoryentity "blog_backend/internal/feature/category/domain/entity"
	postentity "blog_backend/internal/feature/post/domain/entity"
)

// Category is the categories table.
// NameKey holds the case-folded name; its unique index is the storage-level
// guard for case-insensitive name uniqueness. Folding can add runes, so the
// key column is wider than Name.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:50;not null"`
	NameKey   string    `gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time
}

var folder = cases.Fold()

// NameKey returns the normalized form used for uniqueness checks.
func NameKey(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// BeforeCreate assigns an id when none was set.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps NameKey in sync with Name.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.NameKey = NameKey(c.Name)
	return nil
}

// ToEntity converts the model into a domain category.
// posts is attached as-is, nil meaning "not loaded".
func (c *Category) ToEntity(posts []postentity.Post) *categoryentity.Category {
	return &categoryentity.Category{
		ID:        c.ID,
		Name:      c.Name,
		Posts:     posts,
		CreatedAt: c.CreatedAt,
	}
}
