package server

import (
	"strconv"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CommentForm is the submitted comment payload. The post and author are
// fixed by the URL and the authenticated requester.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}

// AddComment attaches a comment to a post and redirects back to the post
// page.
//
//	@Summary		Comment on a post
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Post ID"
//	@Param			request	body		CommentForm	true	"Comment payload"
//	@Success		302		{string}	string		"Redirect to the post page"
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Security		BearerAuth
//	@Router			/posts/{id}/comment [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var form CommentForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.commentService.Add(c.UserContext(), id, requesterID(c), form.Text); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/posts/"+strconv.Itoa(int(id)), fiber.StatusFound)
}
