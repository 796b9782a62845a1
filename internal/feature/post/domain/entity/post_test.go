package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishedCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		posts []Post
		want  int64
	}{
		{"nil association", nil, 0},
		{"empty association", []Post{}, 0},
		{
			name: "two published one draft",
			posts: []Post{
				{Status: PostStatusPublished},
				{Status: PostStatusPublished},
				{Status: PostStatusDraft},
			},
			want: 2,
		},
		{
			name:  "drafts only",
			posts: []Post{{Status: PostStatusDraft}, {Status: PostStatusDraft}},
			want:  0,
		},
		{
			name:  "unknown status is not counted",
			posts: []Post{{Status: "ARCHIVED"}, {Status: PostStatusPublished}},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PublishedCount(tt.posts))
		})
	}
}

func TestPostStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, PostStatusDraft.IsValid())
	assert.True(t, PostStatusPublished.IsValid())
	assert.False(t, PostStatus("draft").IsValid())
	assert.False(t, PostStatus("").IsValid())
}
