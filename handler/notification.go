package handler

import (
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
)

// GetNotificationSettings returns the caller's settings, creating the row
// with defaults on first access.
func GetNotificationSettings(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	setting := model.NotificationSetting{ChatEmail: true}
	err := database.DB.
		Where(model.NotificationSetting{UserId: user.ID}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

func UpdateNotificationSettings(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	input, ok := c.Locals("EditNotificationSetting").(model.EditNotificationSettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	setting := model.NotificationSetting{ChatEmail: true}
	err := database.DB.
		Where(model.NotificationSetting{UserId: user.ID}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.ChatEmail != nil {
		updates["chat_email"] = *input.ChatEmail
		setting.ChatEmail = *input.ChatEmail
	}
	if input.PromoEmail != nil {
		updates["promo_email"] = *input.PromoEmail
		setting.PromoEmail = *input.PromoEmail
	}

	err = database.DB.Model(&model.NotificationSetting{}).
		Where("id = ?", setting.ID).
		Updates(updates).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}
