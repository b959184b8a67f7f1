package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor subscribes the requester to an author and redirects to the
// author's profile. Following an already-followed author changes nothing.
//
//	@Summary		Follow an author
//	@Tags			follows
//	@Produce		json
//	@Param			username	path		string	true	"Author username"
//	@Success		302			{string}	string	"Redirect to the author's profile"
//	@Failure		400			{object}	models.ErrorResponse
//	@Failure		404			{object}	models.ErrorResponse
//	@Security		BearerAuth
//	@Router			/profile/{username}/follow [get]
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	author, err := s.followService.Follow(c.UserContext(), requesterID(c), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect("/profile/"+author.Username, fiber.StatusFound)
}

// UnfollowAuthor removes the subscription and redirects to the author's
// profile. Unfollowing someone you don't follow changes nothing.
//
//	@Summary		Unfollow an author
//	@Tags			follows
//	@Produce		json
//	@Param			username	path		string	true	"Author username"
//	@Success		302			{string}	string	"Redirect to the author's profile"
//	@Failure		404			{object}	models.ErrorResponse
//	@Security		BearerAuth
//	@Router			/profile/{username}/unfollow [get]
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	author, err := s.followService.Unfollow(c.UserContext(), requesterID(c), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect("/profile/"+author.Username, fiber.StatusFound)
}

// Feed returns one page of posts by authors the requester follows, newest
// first. With no follows the page is empty.
//
//	@Summary		Personal feed
//	@Tags			follows
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Success		200		{object}	service.PostPage
//	@Failure		302		{string}	string	"Redirect to login for guests"
//	@Security		BearerAuth
//	@Router			/follow [get]
func (s *Server) Feed(c *fiber.Ctx) error {
	pageData, err := s.postService.Feed(c.UserContext(), requesterID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pageData)
}
