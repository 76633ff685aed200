package model

import "gorm.io/datatypes"

// RoomType is a rentable category inside a property ("Standard", "Deluxe").
// MonthlyPrice is the base price the listing filter operates on; the other
// periods are optional and gated by their enable flags.
type RoomType struct {
	DTO
	PropertyId uint   `gorm:"not null;index" json:"propertyId"`
	Name       string `gorm:"not null" validate:"required" json:"name"`

	MonthlyPrice int64  `gorm:"not null" json:"monthlyPrice"`
	DailyPrice   *int64 `json:"dailyPrice"`
	WeeklyPrice  *int64 `json:"weeklyPrice"`
	YearlyPrice  *int64 `json:"yearlyPrice"`
	DailyEnabled  bool  `gorm:"default:false" json:"dailyEnabled"`
	WeeklyEnabled bool  `gorm:"default:false" json:"weeklyEnabled"`
	YearlyEnabled bool  `gorm:"default:false" json:"yearlyEnabled"`

	MaxOccupancy int    `gorm:"not null;default:1" json:"maxOccupancy"`
	Gender       string `gorm:"not null;default:any" json:"gender"`

	Facilities datatypes.JSON `json:"facilities"`
	Photos     datatypes.JSON `json:"photos"`

	Property Property `gorm:"foreignKey:PropertyId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"property"`
}

type RoomTypes []RoomType

type CreateRoomTypeInput struct {
	PropertyId   uint     `json:"propertyId" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	MonthlyPrice int64    `json:"monthlyPrice" validate:"required,gte=0"`
	DailyPrice   *int64   `json:"dailyPrice" validate:"omitempty,gte=0"`
	WeeklyPrice  *int64   `json:"weeklyPrice" validate:"omitempty,gte=0"`
	YearlyPrice  *int64   `json:"yearlyPrice" validate:"omitempty,gte=0"`
	DailyEnabled  bool    `json:"dailyEnabled"`
	WeeklyEnabled bool    `json:"weeklyEnabled"`
	YearlyEnabled bool    `json:"yearlyEnabled"`
	MaxOccupancy int      `json:"maxOccupancy" validate:"required,gte=1"`
	Gender       string   `json:"gender" validate:"omitempty,oneof=male female any"`
	Facilities   []string `json:"facilities"`
	Photos       []string `json:"photos" validate:"omitempty,dive,url"`
}

type EditRoomTypeInput struct {
	Name         *string  `json:"name"`
	MonthlyPrice *int64   `json:"monthlyPrice" validate:"omitempty,gte=0"`
	DailyPrice   *int64   `json:"dailyPrice" validate:"omitempty,gte=0"`
	WeeklyPrice  *int64   `json:"weeklyPrice" validate:"omitempty,gte=0"`
	YearlyPrice  *int64   `json:"yearlyPrice" validate:"omitempty,gte=0"`
	DailyEnabled  *bool   `json:"dailyEnabled"`
	WeeklyEnabled *bool   `json:"weeklyEnabled"`
	YearlyEnabled *bool   `json:"yearlyEnabled"`
	MaxOccupancy *int     `json:"maxOccupancy" validate:"omitempty,gte=1"`
	Gender       *string  `json:"gender" validate:"omitempty,oneof=male female any"`
	Facilities   []string `json:"facilities"`
	Photos       []string `json:"photos" validate:"omitempty,dive,url"`
}
