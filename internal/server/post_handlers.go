package server

import (
	"errors"
	"strconv"

	"pulse/internal/cache"
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostForm is the submitted post payload. Any author field in the body is
// ignored; the author is always the authenticated requester. The image is
// taken from the multipart file part, not from the body.
type PostForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

func (f *PostForm) groupID() (*uint, error) {
	if f.Group == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(f.Group, 10, 32)
	if err != nil || id == 0 {
		return nil, errors.New("invalid group")
	}
	gid := uint(id)
	return &gid, nil
}

// Index returns one page of the site-wide post listing, newest first.
// Whole pages are cached for 20 seconds; posts created inside the window
// stay invisible until the window expires or the cache is cleared.
//
//	@Summary		Site index
//	@Tags			posts
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Success		200		{object}	service.PostPage
//	@Router			/ [get]
func (s *Server) Index(c *fiber.Ctx) error {
	page := parsePage(c)
	ctx := c.UserContext()
	key := cache.IndexKey(page)

	var cached service.PostPage
	found, err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil && found {
		middleware.IndexCacheHits.WithLabelValues("hit").Inc()
		return c.JSON(&cached)
	}
	middleware.IndexCacheHits.WithLabelValues("miss").Inc()

	result, err := s.postService.ListIndex(ctx, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.cache.SetJSON(ctx, key, result, cache.IndexTTL); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to cache index page", "error", err)
	}
	return c.JSON(result)
}

// PostDetail returns one post with its comments and the author's post count.
//
//	@Summary		Post detail
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/posts/{id} [get]
func (s *Server) PostDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	post, err := s.postService.Get(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.commentService.ListForPost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	authorPosts, err := s.postRepo.CountByAuthor(ctx, post.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":               post,
		"comments":           comments,
		"author_posts_count": authorPosts,
	})
}

// NewPostForm describes the creation form, including the selectable groups.
//
//	@Summary		Post creation form
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		302	{string}	string	"Redirect to login for guests"
//	@Security		BearerAuth
//	@Router			/create [get]
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"form": fiber.Map{
			"fields": []string{"text", "group", "image"},
		},
		"groups": groups,
	})
}

// CreatePost creates a post authored by the requester and redirects to
// their profile page.
//
//	@Summary		Create a post
//	@Tags			posts
//	@Accept			mpfd
//	@Produce		json
//	@Param			text	formData	string	true	"Post text (max 1000 characters)"
//	@Param			group	formData	int		false	"Group ID"
//	@Param			image	formData	file	false	"Attached image"
//	@Success		302		{string}	string	"Redirect to the author's profile"
//	@Failure		400		{object}	models.ErrorResponse
//	@Security		BearerAuth
//	@Router			/create [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var form PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	groupID, err := form.groupID()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"group": "Unknown group"}))
	}

	imagePath, err := s.saveUpload(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"image": err.Error()}))
	}

	ctx := c.UserContext()
	userID := requesterID(c)
	if _, err := s.postService.Create(ctx, service.CreatePostInput{
		AuthorID: userID,
		Text:     form.Text,
		GroupID:  groupID,
		Image:    imagePath,
	}); err != nil {
		s.discardUpload(imagePath)
		return respondServiceError(c, err)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect("/profile/"+author.Username, fiber.StatusFound)
}

// EditPostForm returns the edit form pre-filled with the post's current
// values. Non-authors are sent back to the post page.
//
//	@Summary		Post edit form
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		int		true	"Post ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		302	{string}	string	"Redirect for guests and non-authors"
//	@Security		BearerAuth
//	@Router			/posts/{id}/edit [get]
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	post, err := s.postService.Get(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if post.UserID != requesterID(c) {
		return c.Redirect("/posts/"+strconv.Itoa(int(id)), fiber.StatusFound)
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"form": fiber.Map{
			"fields": []string{"text", "group", "image"},
		},
		"post":    post,
		"groups":  groups,
		"is_edit": true,
	})
}

// EditPost updates a post. Only the author may edit; other users are
// redirected to the post page with nothing changed. The publication date
// is never modified.
//
//	@Summary		Edit a post
//	@Tags			posts
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		int		true	"Post ID"
//	@Param			text	formData	string	true	"Post text (max 1000 characters)"
//	@Param			group	formData	int		false	"Group ID"
//	@Param			image	formData	file	false	"Replacement image"
//	@Success		302		{string}	string	"Redirect to the post page"
//	@Failure		400		{object}	models.ErrorResponse
//	@Security		BearerAuth
//	@Router			/posts/{id}/edit [post]
func (s *Server) EditPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var form PostForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	groupID, err := form.groupID()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"group": "Unknown group"}))
	}

	imagePath, err := s.saveUpload(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{"image": err.Error()}))
	}

	detailURL := "/posts/" + strconv.Itoa(int(id))
	_, err = s.postService.Update(c.UserContext(), service.UpdatePostInput{
		UserID:  requesterID(c),
		PostID:  id,
		Text:    form.Text,
		GroupID: groupID,
		Image:   imagePath,
	})
	if err != nil {
		s.discardUpload(imagePath)
		// Non-authors are bounced back to the post, not shown an error.
		if models.HasCode(err, models.CodeForbidden) {
			return c.Redirect(detailURL, fiber.StatusFound)
		}
		return respondServiceError(c, err)
	}

	return c.Redirect(detailURL, fiber.StatusFound)
}
