package controllers

import (
	"github.com/dsgnbruno/member-area-v2/backend/session"
	"github.com/dsgnbruno/member-area-v2/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SettingsController exposes the persisted theme preference. The
// preference lives next to the session record but is independent of
// login state.
type SettingsController struct {
	Store *session.Store
}

func NewSettingsController(store *session.Store) *SettingsController {
	return &SettingsController{Store: store}
}

func (sc *SettingsController) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": sc.Store.Theme()})
}

func (sc *SettingsController) SetTheme(c *fiber.Ctx) error {
	type ThemeInput struct {
		Theme string `json:"theme"`
	}

	var input ThemeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Theme != session.ThemeLight && input.Theme != session.ThemeDark {
		return utils.BadRequest(c, "Theme must be light or dark")
	}

	sc.Store.SetTheme(input.Theme)
	return c.JSON(fiber.Map{"theme": sc.Store.Theme()})
}
