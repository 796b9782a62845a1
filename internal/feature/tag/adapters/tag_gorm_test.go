package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	postentity "blog_backend/internal/feature/post/domain/entity"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/db/model"
)

func TestTagGorm_List(t *testing.T) {
	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	author := authentity.User{ID: uuid.New(), Name: "a", Email: "a@example.com", Password: "x"}
	require.NoError(t, gdb.Create(&author).Error)
	cat := model.Category{Name: "Go"}
	require.NoError(t, gdb.Create(&cat).Error)

	goTag := model.Tag{Name: "go"}
	ginTag := model.Tag{Name: "gin"}
	unused := model.Tag{Name: "unused"}
	require.NoError(t, gdb.Create(&[]*model.Tag{&goTag, &ginTag, &unused}).Error)

	for _, p := range []model.Post{
		{Title: "one", Content: "first post", Status: string(postentity.PostStatusPublished), Tags: []model.Tag{goTag, ginTag}},
		{Title: "two", Content: "second post", Status: string(postentity.PostStatusDraft), Tags: []model.Tag{goTag}},
	} {
		p.AuthorID = author.ID
		p.CategoryID = cat.ID
		require.NoError(t, gdb.Create(&p).Error)
	}

	tags, err := NewTagGorm(gdb).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 3)

	counts := map[string]int64{}
	totals := map[string]int{}
	for _, tg := range tags {
		counts[tg.Name] = postentity.PublishedCount(tg.Posts)
		totals[tg.Name] = len(tg.Posts)
	}
	assert.Equal(t, "gin", tags[0].Name, "ordered by name")
	assert.Equal(t, map[string]int64{"gin": 1, "go": 1, "unused": 0}, counts)
	assert.Equal(t, map[string]int{"gin": 1, "go": 2, "unused": 0}, totals)
}
