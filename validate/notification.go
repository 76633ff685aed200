package validate

import (
	"fmt"

	"kost_market/model"

	"github.com/gofiber/fiber/v2"
)

func EditNotificationSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditNotificationSettingInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.ChatEmail == nil && input.PromoEmail == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Nothing to update",
			})
		}

		c.Locals("EditNotificationSetting", input)

		return c.Next()
	}
}
