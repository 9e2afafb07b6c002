package controllers

import (
	"errors"

	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// remoteError converts a record-service failure into the one
// user-facing message it gets. Nothing is retried.
func remoteError(c *fiber.Ctx, err error) error {
	var httpErr *nocodb.HTTPError
	switch {
	case errors.Is(err, nocodb.ErrTimeout):
		return utils.Error(c, fiber.StatusGatewayTimeout, "The data service timed out. Please try again later.")
	case errors.Is(err, nocodb.ErrUnexpectedShape), errors.Is(err, nocodb.ErrFieldMissing):
		return utils.Error(c, fiber.StatusBadGateway, "The data service returned an unexpected response.")
	case errors.As(err, &httpErr):
		return utils.Error(c, fiber.StatusBadGateway, "The data service rejected the request.", fiber.Map{
			"status": httpErr.Status,
		})
	default:
		return utils.Error(c, fiber.StatusServiceUnavailable, "Could not reach the data service. Please try again later.")
	}
}
