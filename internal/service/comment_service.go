package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// CommentService implements comment submission and listing.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Add attaches a comment to the given post. The post reference comes from
// the URL path and the author is the requesting user, both fixed by the
// caller; the form contributes the text only.
func (s *CommentService) Add(ctx context.Context, postID, authorID uint, text string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldValidationError(map[string]string{"text": "Text is required"})
	}
	if utf8.RuneCountInString(text) > models.MaxCommentTextLen {
		return nil, models.NewFieldValidationError(map[string]string{"text": "Text too long (max 200 characters)"})
	}

	comment := &models.Comment{
		Text:   text,
		PostID: postID,
		UserID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForPost returns the post's comments, newest first.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
