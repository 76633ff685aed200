package handler

import (
	"errors"

	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetRoomTypesByProperty(c *fiber.Ctx) error {
	propertyId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var roomTypes model.RoomTypes
	if err := database.DB.
		Where("property_id = ?", propertyId).
		Order("id ASC").
		Find(&roomTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, roomTypes)
}

func CreateRoomType(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || !helper.IsOwner(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("owner account required"))
	}

	input, ok := c.Locals("CreateRoomType").(model.CreateRoomTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var property model.Property
	if err := db.First(&property, input.PropertyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
	}
	if property.OwnerId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	newRoomType := new(model.RoomType)
	copier.Copy(&newRoomType, &input)
	newRoomType.Facilities = utils.ToJSONList(input.Facilities)
	newRoomType.Photos = utils.ToJSONList(input.Photos)
	if newRoomType.Gender == "" {
		newRoomType.Gender = constants.GENDER_ANY
	}

	if err := db.Create(&newRoomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if property.IsPublished {
		go helper.RecomputePriceBounds()
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newRoomType)
}

func EditRoomType(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	roomTypeId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("EditRoomType").(model.EditRoomTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var roomType model.RoomType
	if err := db.Preload("Property").First(&roomType, roomTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_TYPE_NOT_FOUND, err)
	}
	if roomType.Property.OwnerId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	copier.CopyWithOption(&roomType, &input, copier.Option{IgnoreEmpty: true})
	if input.Facilities != nil {
		roomType.Facilities = utils.ToJSONList(input.Facilities)
	}
	if input.Photos != nil {
		roomType.Photos = utils.ToJSONList(input.Photos)
	}

	if err := db.Save(&roomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if roomType.Property.IsPublished {
		go helper.RecomputePriceBounds()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, roomType)
}

func DeleteRoomType(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	query := db.Where("id IN ?", input.IDs)
	if !helper.IsAdmin(user) {
		query = query.Where("property_id IN (?)", db.Model(&model.Property{}).Select("id").Where("owner_id = ?", user.ID))
	}

	result := query.Delete(&model.RoomType{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_TYPE_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
