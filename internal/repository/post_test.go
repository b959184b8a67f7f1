package repository

import (
	"context"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListAll_OrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "alice")
	created := createTestPosts(t, db, author, 13)

	// First page: ten newest posts, newest first
	page1, err := repo.ListAll(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, created[12].ID, page1[0].ID)
	assert.Equal(t, created[3].ID, page1[9].ID)

	// Second page: the remaining three
	page2, err := repo.ListAll(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, page2, 3)
	assert.Equal(t, created[2].ID, page2[0].ID)
	assert.Equal(t, created[0].ID, page2[2].ID)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
}

func TestPostRepository_GetByID_PreloadsAuthorAndGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, "travel")
	post := &models.Post{Text: "with group", UserID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(post).Error)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.User.Username)
	require.NotNil(t, got.Group)
	assert.Equal(t, "travel", got.Group.Slug)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestPostRepository_Update_KeepsPublicationDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "carol")
	posts := createTestPosts(t, db, author, 1)
	original := posts[0]
	originalDate := original.CreatedAt

	original.Text = "edited text"
	require.NoError(t, repo.Update(ctx, original))

	got, err := repo.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited text", got.Text)
	assert.WithinDuration(t, originalDate, got.CreatedAt, 0)
}

func TestPostRepository_Update_CanClearGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "dave")
	group := createTestGroup(t, db, "books")
	post := &models.Post{Text: "grouped", UserID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(post).Error)

	post.GroupID = nil
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
}

func TestPostRepository_ListByGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "erin")
	travel := createTestGroup(t, db, "travel")
	books := createTestGroup(t, db, "books")

	require.NoError(t, db.Create(&models.Post{Text: "t1", UserID: author.ID, GroupID: &travel.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "t2", UserID: author.ID, GroupID: &travel.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "b1", UserID: author.ID, GroupID: &books.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "none", UserID: author.ID}).Error)

	posts, err := repo.ListByGroup(ctx, travel.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	count, err := repo.CountByGroup(ctx, travel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Empty group is an empty page, not an error
	empty := createTestGroup(t, db, "music")
	posts, err = repo.ListByGroup(ctx, empty.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_ListFeed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	ignored := createTestUser(t, db, "ignored")

	createTestPosts(t, db, followed, 2)
	createTestPosts(t, db, ignored, 3)

	require.NoError(t, followRepo.Create(ctx, &models.Follow{
		FollowerID: reader.ID,
		AuthorID:   followed.ID,
	}))

	feed, err := repo.ListFeed(ctx, reader.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, post := range feed {
		assert.Equal(t, followed.ID, post.UserID)
	}

	count, err := repo.CountFeed(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The reader's own posts never show up in their feed
	createTestPosts(t, db, reader, 1)
	count, err = repo.CountFeed(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostRepository_ListFeed_NoFollows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	loner := createTestUser(t, db, "loner")
	other := createTestUser(t, db, "other")
	createTestPosts(t, db, other, 5)

	feed, err := repo.ListFeed(ctx, loner.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}
