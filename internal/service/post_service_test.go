package service

import (
	"context"
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postServiceWithStubs(postRepo *postRepoStub, groupRepo *groupRepoStub) *PostService {
	if groupRepo == nil {
		groupRepo = &groupRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
				return &models.Group{ID: id}, nil
			},
		}
	}
	userRepo := &userRepoStub{
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
	}
	return NewPostService(postRepo, groupRepo, userRepo)
}

func TestPostService_Create(t *testing.T) {
	var created *models.Post
	postRepo := &postRepoStub{
		createFn: func(_ context.Context, post *models.Post) error {
			post.ID = 42
			created = post
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return created, nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	post, err := svc.Create(context.Background(), CreatePostInput{
		AuthorID: 7,
		Text:     "hello world",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), post.ID)
	assert.Equal(t, uint(7), post.UserID)
}

func TestPostService_Create_Validation(t *testing.T) {
	postRepo := &postRepoStub{
		createFn: func(context.Context, *models.Post) error {
			t.Fatal("create must not be called for invalid input")
			return nil
		},
	}
	groupRepo := &groupRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", id)
		},
	}
	svc := postServiceWithStubs(postRepo, groupRepo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePostInput
		field string
	}{
		{
			name:  "empty text",
			input: CreatePostInput{AuthorID: 1, Text: "   "},
			field: "text",
		},
		{
			name:  "text over limit",
			input: CreatePostInput{AuthorID: 1, Text: strings.Repeat("x", models.MaxPostTextLen+1)},
			field: "text",
		},
		{
			name: "unknown group",
			input: CreatePostInput{
				AuthorID: 1,
				Text:     "fine",
				GroupID:  func() *uint { id := uint(99); return &id }(),
			},
			field: "group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestPostService_Create_TextAtLimitIsAccepted(t *testing.T) {
	var created *models.Post
	postRepo := &postRepoStub{
		createFn: func(_ context.Context, post *models.Post) error {
			created = post
			return nil
		},
		getByIDFn: func(context.Context, uint) (*models.Post, error) {
			return created, nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	// Multibyte runes count as one character each
	_, err := svc.Create(context.Background(), CreatePostInput{
		AuthorID: 1,
		Text:     strings.Repeat("я", models.MaxPostTextLen),
	})
	assert.NoError(t, err)
}

func TestPostService_Update_OnlyAuthor(t *testing.T) {
	updateCalled := false
	postRepo := &postRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Post, error) {
			return &models.Post{ID: 5, UserID: 1, Text: "original"}, nil
		},
		updateFn: func(context.Context, *models.Post) error {
			updateCalled = true
			return nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	_, err := svc.Update(context.Background(), UpdatePostInput{
		UserID: 2,
		PostID: 5,
		Text:   "hijacked",
	})
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeForbidden))
	assert.False(t, updateCalled, "update must not run for non-authors")
}

func TestPostService_Update_KeepsImageWhenEmpty(t *testing.T) {
	var updated *models.Post
	postRepo := &postRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Post, error) {
			if updated != nil {
				return updated, nil
			}
			return &models.Post{ID: 5, UserID: 1, Text: "original", Image: "posts/old.png"}, nil
		},
		updateFn: func(_ context.Context, post *models.Post) error {
			updated = post
			return nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	post, err := svc.Update(context.Background(), UpdatePostInput{
		UserID: 1,
		PostID: 5,
		Text:   "new text",
	})
	require.NoError(t, err)
	assert.Equal(t, "new text", post.Text)
	assert.Equal(t, "posts/old.png", post.Image)
}

func TestPostService_ListByGroup_UnknownSlug(t *testing.T) {
	groupRepo := &groupRepoStub{
		getBySlugFn: func(_ context.Context, slug string) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", slug)
		},
	}
	svc := postServiceWithStubs(&postRepoStub{}, groupRepo)

	_, _, err := svc.ListByGroup(context.Background(), "missing", 1)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestPostService_ListIndex_PageMath(t *testing.T) {
	var gotLimit, gotOffset int
	postRepo := &postRepoStub{
		countAllFn: func(context.Context) (int64, error) { return 13, nil },
		listAllFn: func(_ context.Context, limit, offset int) ([]*models.Post, error) {
			gotLimit, gotOffset = limit, offset
			return []*models.Post{{ID: 3}, {ID: 2}, {ID: 1}}, nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	page, err := svc.ListIndex(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, PageSize, gotLimit)
	assert.Equal(t, PageSize, gotOffset)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(13), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPostService_Feed_EmptyWithoutFollows(t *testing.T) {
	postRepo := &postRepoStub{
		countFeedFn: func(context.Context, uint) (int64, error) { return 0, nil },
		listFeedFn: func(context.Context, uint, int, int) ([]*models.Post, error) {
			return nil, nil
		},
	}
	svc := postServiceWithStubs(postRepo, nil)

	page, err := svc.Feed(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 0, page.TotalPages)
}
