package service

import (
	"context"
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentServiceWithStubs(commentRepo *commentRepoStub) *CommentService {
	postRepo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
	}
	return NewCommentService(commentRepo, postRepo)
}

func TestCommentService_Add(t *testing.T) {
	var created *models.Comment
	svc := commentServiceWithStubs(&commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			created = comment
			return nil
		},
	})

	comment, err := svc.Add(context.Background(), 5, 9, "nice one")
	require.NoError(t, err)
	assert.Equal(t, uint(5), comment.PostID)
	assert.Equal(t, uint(9), comment.UserID)
	assert.Equal(t, created, comment)
}

func TestCommentService_Add_Validation(t *testing.T) {
	svc := commentServiceWithStubs(&commentRepoStub{
		createFn: func(context.Context, *models.Comment) error {
			t.Fatal("create must not be called for invalid input")
			return nil
		},
	})
	ctx := context.Background()

	_, err := svc.Add(ctx, 5, 9, "   ")
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeValidation))

	_, err = svc.Add(ctx, 5, 9, strings.Repeat("x", models.MaxCommentTextLen+1))
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeValidation))

	// Exactly at the limit is fine
	svcOK := commentServiceWithStubs(&commentRepoStub{
		createFn: func(context.Context, *models.Comment) error { return nil },
	})
	_, err = svcOK.Add(ctx, 5, 9, strings.Repeat("ы", models.MaxCommentTextLen))
	assert.NoError(t, err)
}

func TestCommentService_Add_UnknownPost(t *testing.T) {
	postRepo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
	}
	svc := NewCommentService(&commentRepoStub{}, postRepo)

	_, err := svc.Add(context.Background(), 404, 9, "hello")
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}
