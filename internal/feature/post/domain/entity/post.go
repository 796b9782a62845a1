// Package entity defines the domain entities for the post feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// PostStatusDraft marks a post visible only to its author.
	PostStatusDraft PostStatus = "DRAFT"
	// PostStatusPublished marks a post visible to everyone.
	PostStatusPublished PostStatus = "PUBLISHED"
)

// IsValid reports whether s is one of the known statuses.
func (s PostStatus) IsValid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// Author is the subset of a user exposed alongside a post.
type Author struct {
	ID   uuid.UUID
	Name string
}

// CategoryRef is the category a post belongs to.
type CategoryRef struct {
	ID   uuid.UUID
	Name string
}

// TagRef is a tag attached to a post.
type TagRef struct {
	ID   uuid.UUID
	Name string
}

// Post represents a blog post.
// Author, Category and Tags are only populated when the adapter loaded them.
type Post struct {
	ID          uuid.UUID
	Title       string
	Content     string
	Status      PostStatus
	ReadingTime int
	AuthorID    uuid.UUID
	CategoryID  uuid.UUID
	Author      *Author
	Category    *CategoryRef
	Tags        []TagRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublishedCount returns how many posts are PUBLISHED.
// A nil or empty slice yields 0. Categories and tags both derive their
// postCount from this function.
func PublishedCount(posts []Post) int64 {
	var n int64
	for _, p := range posts {
		if p.Status == PostStatusPublished {
			n++
		}
	}
	return n
}
