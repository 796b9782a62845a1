package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	postentity "blog_backend/internal/feature/post/domain/entity"
)

// Post is the posts table.
// Deleting a category or author that still has posts is rejected by the
// RESTRICT foreign keys.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Content     string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:16;not null;index"`
	ReadingTime int       `gorm:"not null;default:0"`

	AuthorID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Author   *authentity.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`

	Tags []Tag `gorm:"many2many:post_tags"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeCreate assigns an id when none was set.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ToEntity converts the model into a domain post, carrying over whichever
// associations were preloaded.
func (p *Post) ToEntity() *postentity.Post {
	e := &postentity.Post{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Status:      postentity.PostStatus(p.Status),
		ReadingTime: p.ReadingTime,
		AuthorID:    p.AuthorID,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Author != nil {
		e.Author = &postentity.Author{ID: p.Author.ID, Name: p.Author.Name}
	}
	if p.Category != nil {
		e.Category = &postentity.CategoryRef{ID: p.Category.ID, Name: p.Category.Name}
	}
	if p.Tags != nil {
		e.Tags = make([]postentity.TagRef, 0, len(p.Tags))
		for _, t := range p.Tags {
			e.Tags = append(e.Tags, postentity.TagRef{ID: t.ID, Name: t.Name})
		}
	}
	return e
}

// PostsToEntities converts a slice of models.
func PostsToEntities(posts []Post) []postentity.Post {
	out := make([]postentity.Post, 0, len(posts))
	for i := range posts {
		out = append(out, *posts[i].ToEntity())
	}
	return out
}
