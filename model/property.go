package model

import "gorm.io/datatypes"

type Property struct {
	DTO
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Address     string  `gorm:"not null" json:"address"`
	City        string  `gorm:"not null;index" json:"city"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Description *string `json:"description"`

	CommonFacilities  datatypes.JSON `json:"commonFacilities"`
	ParkingFacilities datatypes.JSON `json:"parkingFacilities"`
	Photos            datatypes.JSON `json:"photos"`

	IsPublished bool   `gorm:"default:false;index" json:"isPublished"`
	Status      string `gorm:"default:DRAFT" json:"status"`

	OwnerId   uint       `gorm:"not null;index" json:"ownerId"`
	Owner     User       `gorm:"foreignKey:OwnerId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner"`
	RoomTypes []RoomType `gorm:"foreignKey:PropertyId" json:"roomTypes"`
}

type Properties []Property

type CreatePropertyInput struct {
	Name              string   `json:"name" validate:"required"`
	Address           string   `json:"address" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Description       *string  `json:"description"`
	CommonFacilities  []string `json:"commonFacilities"`
	ParkingFacilities []string `json:"parkingFacilities"`
	Photos            []string `json:"photos" validate:"omitempty,dive,url"`
}

type EditPropertyInput struct {
	Name              *string  `json:"name"`
	Address           *string  `json:"address"`
	City              *string  `json:"city"`
	Phone             *string  `json:"phone"`
	Email             *string  `json:"email" validate:"omitempty,email"`
	Description       *string  `json:"description"`
	CommonFacilities  []string `json:"commonFacilities"`
	ParkingFacilities []string `json:"parkingFacilities"`
	Photos            []string `json:"photos" validate:"omitempty,dive,url"`
}

type FilterProperty struct {
	Pagination
	SearchKey string `json:"searchKey" query:"searchKey"`
	City      string `json:"city" query:"city"`
	Status    string `json:"status" query:"status"`
}
