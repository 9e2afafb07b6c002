package controllers

import (
	"errors"

	"github.com/dsgnbruno/member-area-v2/backend/config"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
	"github.com/dsgnbruno/member-area-v2/backend/session"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Gate *session.Gate
	Cfg  *config.Config
}

func NewAuthController(gate *session.Gate, cfg *config.Config) *AuthController {
	return &AuthController{Gate: gate, Cfg: cfg}
}

// [+] Login godoc
// @Summary Member login
// @Description Authenticate against the member table and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /auth/login [post]
//
// Remote failures never reach the client raw; each error kind maps to
// one short message.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Gate.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			return utils.BadRequest(c, "Please enter a valid email and password")
		case errors.Is(err, session.ErrInvalidCredentials):
			return utils.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, session.ErrAccessRevoked):
			return utils.Forbidden(c, "Your account access has been revoked. Please contact support for assistance.")
		case errors.Is(err, nocodb.ErrTimeout):
			return utils.Error(c, fiber.StatusGatewayTimeout, "Connection to authentication service timed out. Please try again later.")
		case errors.Is(err, nocodb.ErrUnexpectedShape), errors.Is(err, nocodb.ErrFieldMissing):
			return utils.Error(c, fiber.StatusBadGateway, "Authentication error: Unexpected data format")
		default:
			return utils.Error(c, fiber.StatusServiceUnavailable, "Could not connect to authentication service. Please try again later.")
		}
	}

	token, err := utils.GenerateJWTToken(utils.SessionClaims{
		Email:    user.Email,
		Admin:    user.IsAdmin(),
		Lifetime: user.Lifetime,
	}, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout clears the cached session. Idempotent.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Gate.Logout()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}

// Me returns the cached session record.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := ac.Gate.CurrentUser()
	if user == nil {
		return utils.Unauthorized(c, "Not logged in")
	}
	return c.JSON(fiber.Map{
		"user":     user,
		"admin":    ac.Gate.IsAdmin(),
		"lifetime": ac.Gate.HasLifetimeAccess(),
	})
}
