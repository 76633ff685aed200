package model

import (
	"time"

	"gorm.io/datatypes"
)

// ListingRow is a room type flattened with its parent property's display
// fields. It is the unit the browse screens render and the filter engine
// operates on; it is never persisted.
type ListingRow struct {
	RoomTypeId   uint           `gorm:"column:room_type_id" json:"roomTypeId"`
	PropertyId   uint           `gorm:"column:property_id" json:"propertyId"`
	Name         string         `gorm:"column:name" json:"name"`
	PropertyName string         `gorm:"column:property_name" json:"propertyName"`
	Slug         string         `gorm:"column:slug" json:"slug"`
	City         string         `gorm:"column:city" json:"city"`
	Address      string         `gorm:"column:address" json:"address"`
	MonthlyPrice int64          `gorm:"column:monthly_price" json:"monthlyPrice"`
	MaxOccupancy int            `gorm:"column:max_occupancy" json:"maxOccupancy"`
	Gender       string         `gorm:"column:gender" json:"gender"`
	Facilities   datatypes.JSON `gorm:"column:facilities" json:"facilities"`
	Photos       datatypes.JSON `gorm:"column:photos" json:"photos"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"createdAt"`
	Saved        bool           `gorm:"-" json:"saved"`
}

type ListingRows []ListingRow

// ListingFilter carries the renter-selected predicates. Empty strings and
// the "all" sentinel disable a dimension; nil price bounds mean no bound on
// that side. Occupancy stays a string so "all" survives query parsing.
type ListingFilter struct {
	Pagination
	SearchQuery string `json:"searchQuery" query:"q"`
	City        string `json:"city" query:"city"`
	PriceMin    *int64 `json:"priceMin" query:"priceMin"`
	PriceMax    *int64 `json:"priceMax" query:"priceMax"`
	Occupancy   string `json:"occupancy" query:"occupancy"`
	Gender      string `json:"gender" query:"gender"`
	Type        string `json:"type" query:"type"`
	SortBy      string `json:"sortBy" query:"sortBy"`
}

// PriceBounds is the observed [min,max] monthly price across published
// listings, recomputed by the daily scheduler and cached in redis.
type PriceBounds struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}
