package handler

import (
	"errors"

	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ToggleFavorite saves or unsaves a room type for the current user. The
// toggle is idempotent per state: saving twice leaves one row.
func ToggleFavorite(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var input model.ToggleFavoriteInput
	if err := c.BodyParser(&input); err != nil || input.RoomTypeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var roomType model.RoomType
	if err := db.Joins("Property").
		Where("room_types.id = ? AND \"Property\".is_published = ?", input.RoomTypeId, true).
		First(&roomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_TYPE_NOT_FOUND, err)
	}

	var favorite model.Favorite
	err := db.Where("user_id = ? AND room_type_id = ?", user.ID, input.RoomTypeId).First(&favorite).Error
	switch {
	case err == nil:
		if err := db.Delete(&favorite).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomTypeId": input.RoomTypeId, "saved": false})
	case errors.Is(err, gorm.ErrRecordNotFound):
		favorite = model.Favorite{UserId: user.ID, RoomTypeId: input.RoomTypeId}
		if err := db.Create(&favorite).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomTypeId": input.RoomTypeId, "saved": true})
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

// GetMyFavorites returns the saved listings as listing rows, sorted by the
// same engine the browse screen uses.
func GetMyFavorites(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var rows []model.ListingRow
	err := database.DB.Model(&model.RoomType{}).
		Select(listingColumns).
		Joins("JOIN properties ON properties.id = room_types.property_id").
		Joins("JOIN favorites ON favorites.room_type_id = room_types.id").
		Where("favorites.user_id = ? AND properties.is_published = ?", user.ID, true).
		Order("favorites.id ASC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range rows {
		rows[i].Saved = true
	}

	sorted := helper.FilterListings(rows, model.ListingFilter{SortBy: c.Query("sortBy")})

	return utils.SuccessResponse(c, fiber.StatusOK, sorted)
}
