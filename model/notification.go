package model

// NotificationSetting holds the per-user mail toggles. A row is created
// with defaults the first time the settings screen loads.
type NotificationSetting struct {
	DTO
	UserId     uint `gorm:"not null;uniqueIndex" json:"userId"`
	ChatEmail  bool `gorm:"default:true" json:"chatEmail"`
	PromoEmail bool `gorm:"default:false" json:"promoEmail"`

	User User `gorm:"foreignKey:UserId;references:ID;constraint:OnDelete:CASCADE" json:"user"`
}

type EditNotificationSettingInput struct {
	ChatEmail  *bool `json:"chatEmail"`
	PromoEmail *bool `json:"promoEmail"`
}
