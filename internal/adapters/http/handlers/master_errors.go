package handlers

import (
	"errors"

	"masterdesk/internal/core/domain"
	"masterdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// writeMasterError maps master-data errors onto HTTP responses. Field
// validation renders inline in the modal (422), uniqueness violations map
// to 409 so the client can highlight the name field.
func writeMasterError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		if errors.As(err, &vErr) {
			return response.Conflict(c, vErr.Message)
		}
		return response.Conflict(c, "Name must be unique")
	case errors.As(err, &vErr):
		return response.UnprocessableEntity(c, vErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, notFoundMsg)
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}

// actor returns the username set by the auth middleware
func actor(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
