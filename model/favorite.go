package model

type Favorite struct {
	DTO
	UserId     uint     `gorm:"not null;uniqueIndex:idx_fav_user_room" json:"userId"`
	RoomTypeId uint     `gorm:"not null;uniqueIndex:idx_fav_user_room" json:"roomTypeId"`
	User       User     `gorm:"foreignKey:UserId;references:ID;constraint:OnDelete:CASCADE" json:"user"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeId;references:ID;constraint:OnDelete:CASCADE" json:"roomType"`
}

type Favorites []Favorite

type ToggleFavoriteInput struct {
	RoomTypeId uint `json:"roomTypeId" validate:"required"`
}
