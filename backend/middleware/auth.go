package middleware

import (
	"github.com/dsgnbruno/member-area-v2/backend/config"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the locals key holding the verified session claims.
const ClaimsKey = "sessionClaims"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !claims.Admin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Admin access required",
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Claims reads the verified claims stored by the auth middleware.
func Claims(c *fiber.Ctx) utils.SessionClaims {
	claims, _ := c.Locals(ClaimsKey).(utils.SessionClaims)
	return claims
}
