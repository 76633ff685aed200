package handler

import (
	"errors"
	"fmt"

	"kost_market/config"
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetMyProperties lists the authenticated owner's properties, drafts
// included.
func GetMyProperties(c *fiber.Ctx) error {
	filterInput := new(model.FilterProperty)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || !helper.IsOwner(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("owner account required"))
	}

	baseQuery := db.Model(&model.Property{}).Where("owner_id = ?", user.ID)
	if helper.IsAdmin(user) {
		baseQuery = db.Model(&model.Property{})
	}

	if filterInput.City != "" {
		baseQuery = baseQuery.Where("city = ?", filterInput.City)
	}
	if filterInput.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filterInput.Status)
	}
	if filterInput.SearchKey != "" {
		baseQuery = baseQuery.Where("name ILIKE ?", "%"+filterInput.SearchKey+"%")
	}

	var totalCount int64
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var properties model.Properties
	query := utils.ApplyPagination(baseQuery.Preload("RoomTypes"), filterInput.Limit, filterInput.Page)
	if err := query.Order("id ASC").Find(&properties).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       properties,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func CreateProperty(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || !helper.IsOwner(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("owner account required"))
	}

	input, ok := c.Locals("CreateProperty").(model.CreatePropertyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	newProperty := new(model.Property)
	copier.Copy(&newProperty, &input)
	newProperty.OwnerId = user.ID
	newProperty.Status = constants.PROPERTY_DRAFT
	newProperty.IsPublished = false
	newProperty.CommonFacilities = utils.ToJSONList(input.CommonFacilities)
	newProperty.ParkingFacilities = utils.ToJSONList(input.ParkingFacilities)
	newProperty.Photos = utils.ToJSONList(input.Photos)

	err := db.Transaction(func(tx *gorm.DB) error {
		newProperty.Slug = helper.GenerateUniquePropertySlug(tx, input.Name)
		return tx.Create(&newProperty).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newProperty)
}

func EditProperty(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	propertyId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("EditProperty").(model.EditPropertyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var property model.Property
	if err := db.First(&property, propertyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
	}
	if property.OwnerId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	copier.CopyWithOption(&property, &input, copier.Option{IgnoreEmpty: true})
	if input.CommonFacilities != nil {
		property.CommonFacilities = utils.ToJSONList(input.CommonFacilities)
	}
	if input.ParkingFacilities != nil {
		property.ParkingFacilities = utils.ToJSONList(input.ParkingFacilities)
	}
	if input.Photos != nil {
		property.Photos = utils.ToJSONList(input.Photos)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != "" {
			property.Slug = helper.GenerateUniquePropertySlug(tx, *input.Name)
		}
		return tx.Save(&property).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, property)
}

func DeleteProperty(c *fiber.Ctx) error {
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
		query = query.Where("owner_id = ?", user.ID)
	}

	result := query.Delete(&model.Property{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

func setPublished(c *fiber.Ctx, published bool) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	propertyId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var property model.Property
	if err := db.First(&property, propertyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
	}
	if property.OwnerId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	status := constants.PROPERTY_DRAFT
	if published {
		status = constants.PROPERTY_PUBLISHED
	}

	updates := map[string]interface{}{"is_published": published, "status": status}
	if err := db.Model(&property).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	// Published inventory changed, refresh the price window.
	go helper.RecomputePriceBounds()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": property.ID, "isPublished": published, "status": status})
}

func PublishProperty(c *fiber.Ctx) error {
	return setPublished(c, true)
}

func UnpublishProperty(c *fiber.Ctx) error {
	return setPublished(c, false)
}

// GetPropertyDetail is the public detail screen: published only, room types
// preloaded.
func GetPropertyDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var property model.Property
	if err := database.DB.
		Preload("RoomTypes").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&property).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, property)
}

// GetPropertyQR renders a QR code pointing at the public listing page.
func GetPropertyQR(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var count int64
	database.DB.Model(&model.Property{}).
		Where("slug = ? AND is_published = ?", slug, true).
		Count(&count)
	if count == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, nil)
	}

	link := fmt.Sprintf("%s/kost/%s", config.ConfigOr("APP_BASE_URL", "http://localhost:5173"), slug)
	png, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
