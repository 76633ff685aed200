package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kost_market/config"
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

func RegisterUser(c *fiber.Ctx) error {
	db := database.DB

	userInput, ok := c.Locals("RegisterUser").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil, "general")
	}

	var existingUser model.User
	if err := db.Where("user_name = ?", userInput.UserName).First(&existingUser).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.USERNAME_ALREADY_EXISTS, nil, "username")
	}

	existing, err := helper.GetUserByEmail(userInput.Email)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_ALREADY_EXISTS, nil, "email")
	}

	var phoneCount int64
	if err := db.Model(&model.User{}).Where("phone = ?", userInput.Phone).Count(&phoneCount).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "phone")
	}
	if phoneCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.PHONE_ALREADY_EXISTS, nil, "phone")
	}

	hash, err := helper.HashPassword(userInput.Password)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err, "password")
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &userInput)
	newUser.Password = hash
	newUser.IsActive = true
	if newUser.Role == "" {
		newUser.Role = constants.ROLE_RENTER
	}

	if err := db.Create(&newUser).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			if strings.Contains(err.Error(), "email") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_ALREADY_EXISTS, nil, "email")
			}
			if strings.Contains(err.Error(), "user_name") {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.USERNAME_ALREADY_EXISTS, nil, "username")
			}
		}

		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err, "general")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "registration success",
		"data":    newUser,
	})
}

func Me(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func EditProfile(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	input, ok := c.Locals("EditProfile").(model.EditUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	input, ok := c.Locals("ChangePassword").(model.UserChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, nil, "currentPassword")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := db.Model(&user).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB

	emailInput, ok := c.Locals("EmailForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var user model.User
	if err := db.Where("email = ?", emailInput.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No account with that email"})
	}

	token := uuid.NewString()

	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not store reset token"})
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.ConfigOr("APP_BASE_URL", "http://localhost:5173"), token)
	if err := utils.SendPasswordResetEmail(emailInput.Email, resetLink); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send email"})
	}

	return c.JSON(fiber.Map{"message": "Reset link sent to your email"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RESET_TOKEN_INVALID, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := db.Model(&model.User{}).Where("id = ?", resetToken.UserId).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	db.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password reset"})
}
