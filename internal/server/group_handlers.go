package server

import (
	"github.com/gofiber/fiber/v2"
)

// GroupPosts returns a group and one page of its posts, newest first. An
// unknown slug is a 404; a known group without posts is an empty page.
//
//	@Summary		Group listing
//	@Tags			groups
//	@Produce		json
//	@Param			slug	path		string	true	"Group slug"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/group/{slug} [get]
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	group, pageData, err := s.postService.ListByGroup(c.UserContext(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"group": group,
		"page":  pageData,
	})
}
