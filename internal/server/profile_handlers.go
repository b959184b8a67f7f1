package server

import (
	"github.com/gofiber/fiber/v2"
)

// Profile returns an author's page: their posts (paginated, newest first),
// their post count, and whether the requester follows them. The `following`
// flag is always false for guests.
//
//	@Summary		Author profile
//	@Tags			profiles
//	@Produce		json
//	@Param			username	path		string	true	"Author username"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	models.ErrorResponse
//	@Router			/profile/{username} [get]
func (s *Server) Profile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	author, pageData, err := s.postService.ListByAuthor(ctx, c.Params("username"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	following := false
	if viewerID, ok := s.optionalUserID(c); ok {
		following, err = s.followService.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return respondServiceError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"author":      author,
		"page":        pageData,
		"posts_count": pageData.Total,
		"following":   following,
	})
}
