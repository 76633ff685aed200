package validate

import (
	"fmt"
	"strings"

	"kost_market/model"

	"github.com/gofiber/fiber/v2"
)

func OpenConversation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OpenConversationInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("OpenConversation", input)

		return c.Next()
	}
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendMessageInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		input.Body = strings.TrimSpace(input.Body)
		if input.Body == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message body must not be empty",
				"field": "body",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("SendMessage", input)

		return c.Next()
	}
}
