package model

import "time"

type User struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Password string `gorm:"not null" json:"-"`
	UserName string `gorm:"uniqueIndex" json:"username"`

	FullName  *string `json:"fullname"`
	AvatarUrl *string `json:"avatarUrl"`

	Role     string `gorm:"not null;default:RENTER" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterUserInput struct {
	UserName string `validate:"required" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=8" json:"password"`
	Role     string `validate:"omitempty,oneof=RENTER OWNER" json:"role"`
}

type EditUserInput struct {
	FullName  *string `json:"fullname"`
	Phone     *string `json:"phone"`
	AvatarUrl *string `json:"avatarUrl" validate:"omitempty,url"`
}

type UserChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
