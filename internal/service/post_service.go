package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// PostService implements post creation, editing and the listing queries.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// CreatePostInput carries a validated-on-entry post submission. AuthorID is
// always the requesting user; any author value in the submitted form data is
// discarded before this point.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	Image    string
}

// UpdatePostInput carries an edit submission. Image empty means "keep the
// current image".
type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Text    string
	GroupID *uint
	Image   string
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// validatePostFields returns per-field messages for an invalid submission.
func (s *PostService) validatePostFields(ctx context.Context, text string, groupID *uint) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(text) == "" {
		fields["text"] = "Text is required"
	} else if utf8.RuneCountInString(text) > models.MaxPostTextLen {
		fields["text"] = "Text too long (max 1000 characters)"
	}
	if groupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
			fields["group"] = "Unknown group"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Create persists a new post. Exactly one record is written on success.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if fields := s.validatePostFields(ctx, in.Text, in.GroupID); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	post := &models.Post{
		Text:    in.Text,
		UserID:  in.AuthorID,
		GroupID: in.GroupID,
		Image:   in.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// Get returns a single post by identifier.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update edits a post's text, group and image. Only the author may edit;
// everyone else gets a forbidden error and no mutation happens. The
// publication date is never touched.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}

	if fields := s.validatePostFields(ctx, in.Text, in.GroupID); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListIndex returns one page of the site-wide listing, newest first.
func (s *PostService) ListIndex(ctx context.Context, page int) (*PostPage, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListAll(ctx, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, page, total), nil
}

// ListByGroup returns the group and one page of its posts. Unknown slugs
// are a not-found condition; a known group with zero posts is an empty page.
func (s *PostService) ListByGroup(ctx context.Context, slug string, page int) (*models.Group, *PostPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, PageSize, pageOffset(page))
	if err != nil {
		return nil, nil, err
	}
	return group, newPostPage(posts, page, total), nil
}

// ListByAuthor returns the author and one page of their posts.
func (s *PostService) ListByAuthor(ctx context.Context, username string, page int) (*models.User, *PostPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, PageSize, pageOffset(page))
	if err != nil {
		return nil, nil, err
	}
	return author, newPostPage(posts, page, total), nil
}

// Feed returns one page of posts by authors the user follows, newest first.
// With zero follows the page is empty.
func (s *PostService) Feed(ctx context.Context, userID uint, page int) (*PostPage, error) {
	total, err := s.postRepo.CountFeed(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListFeed(ctx, userID, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, page, total), nil
}
