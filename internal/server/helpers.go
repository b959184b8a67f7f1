package server

import (
	"errors"
	"strconv"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler helper already wrote an error
// response; the caller should just return nil.
var errResponseWritten = errors.New("response written")

// parsePage reads the `page` query parameter. Anything missing, malformed
// or below 1 falls back to the first page.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// parseID parses a numeric path parameter. On failure it writes a 400
// response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// requesterID returns the authenticated user's ID set by AuthRequired.
func requesterID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps a service-layer error to the HTTP response.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
