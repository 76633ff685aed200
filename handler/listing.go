package handler

import (
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
)

const listingColumns = `room_types.id AS room_type_id,
	room_types.property_id AS property_id,
	room_types.name AS name,
	properties.name AS property_name,
	properties.slug AS slug,
	properties.city AS city,
	properties.address AS address,
	room_types.monthly_price AS monthly_price,
	room_types.max_occupancy AS max_occupancy,
	room_types.gender AS gender,
	room_types.facilities AS facilities,
	room_types.photos AS photos,
	room_types.created_at AS created_at`

// loadPublishedListings fetches the joined listing rows in insertion order.
// Filtering and sorting happen in memory via helper.FilterListings so the
// browse semantics stay identical no matter where the rows come from.
func loadPublishedListings() ([]model.ListingRow, error) {
	var rows []model.ListingRow
	err := database.DB.Model(&model.RoomType{}).
		Select(listingColumns).
		Joins("JOIN properties ON properties.id = room_types.property_id").
		Where("properties.is_published = ?", true).
		Order("room_types.id ASC").
		Scan(&rows).Error
	return rows, err
}

// markSaved reconciles the ephemeral Saved flag from the favorites table on
// every load.
func markSaved(rows []model.ListingRow, userId uint) {
	if userId == 0 || len(rows) == 0 {
		return
	}

	var favoriteIds []uint
	if err := database.DB.Model(&model.Favorite{}).
		Where("user_id = ?", userId).
		Pluck("room_type_id", &favoriteIds).Error; err != nil {
		return
	}

	saved := make(map[uint]bool, len(favoriteIds))
	for _, id := range favoriteIds {
		saved[id] = true
	}
	for i := range rows {
		rows[i].Saved = saved[rows[i].RoomTypeId]
	}
}

// GetListings is the renter browse screen: published rows, Saved
// reconciled, then the pure filter engine and pagination.
func GetListings(c *fiber.Ctx) error {
	filterInput := new(model.ListingFilter)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, err := loadPublishedListings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	userId, _ := c.Locals("userId").(uint)
	markSaved(rows, userId)

	filtered := helper.FilterListings(rows, *filterInput)
	totalCount := int64(len(filtered))
	paged := utils.PaginateSlice(filtered, filterInput.Limit, filterInput.Page)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":        paged,
		"limit":       filterInput.Limit,
		"page":        filterInput.Page,
		"totalCount":  totalCount,
		"priceBounds": helper.GetPriceBounds(c.Context()),
	})
}

// SearchListings is the type-ahead variant: query required, same engine.
func SearchListings(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEARCH_KEYWORD_REQUIRED, nil)
	}

	rows, err := loadPublishedListings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	userId, _ := c.Locals("userId").(uint)
	markSaved(rows, userId)

	filtered := helper.FilterListings(rows, model.ListingFilter{SearchQuery: query, SortBy: c.Query("sortBy")})

	return utils.SuccessResponse(c, fiber.StatusOK, filtered)
}

// GetListingCities feeds the city dropdown.
func GetListingCities(c *fiber.Ctx) error {
	var cities []string
	err := database.DB.Model(&model.Property{}).
		Where("is_published = ?", true).
		Distinct().
		Order("city ASC").
		Pluck("city", &cities).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cities)
}

// GetListingTypes feeds the unit-type dropdown with the distinct room type
// names across published properties.
func GetListingTypes(c *fiber.Ctx) error {
	var types []string
	err := database.DB.Model(&model.RoomType{}).
		Joins("JOIN properties ON properties.id = room_types.property_id").
		Where("properties.is_published = ?", true).
		Distinct().
		Order("room_types.name ASC").
		Pluck("room_types.name", &types).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, types)
}
