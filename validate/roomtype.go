package validate

import (
	"errors"
	"fmt"
	"strconv"

	"kost_market/constants"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoomType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomTypeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Gender == "" {
			input.Gender = constants.GENDER_ANY
		}
		if !utils.IsValidValueOfConstant(input.Gender, constants.GENDERS) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Gender restriction must be male, female or any",
				"field": "gender",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("CreateRoomType", input)

		return c.Next()
	}
}

func EditRoomType(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		c.Locals("inputId", id)

		var input model.EditRoomTypeInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Gender != nil && !utils.IsValidValueOfConstant(*input.Gender, constants.GENDERS) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Gender restriction must be male, female or any",
				"field": "gender",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("EditRoomType", input)

		return c.Next()
	}
}
