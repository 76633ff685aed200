package model

import "time"

// Conversation links one renter with one owner, optionally anchored to the
// property the renter asked about. Code is the public identifier used by
// the polling and websocket endpoints.
type Conversation struct {
	DTO
	Code          string     `gorm:"uniqueIndex;not null" json:"code"`
	RenterId      uint       `gorm:"not null;index" json:"renterId"`
	OwnerId       uint       `gorm:"not null;index" json:"ownerId"`
	PropertyId    *uint      `gorm:"index" json:"propertyId"`
	LastMessageAt *time.Time `json:"lastMessageAt"`

	Renter   User      `gorm:"foreignKey:RenterId;references:ID" json:"renter"`
	Owner    User      `gorm:"foreignKey:OwnerId;references:ID" json:"owner"`
	Property *Property `gorm:"foreignKey:PropertyId;references:ID" json:"property"`
	Messages []Message `gorm:"foreignKey:ConversationId" json:"messages"`
}

type Conversations []Conversation

type Message struct {
	DTO
	ConversationId uint       `gorm:"not null;index" json:"conversationId"`
	SenderId       uint       `gorm:"not null;index" json:"senderId"`
	Body           string     `gorm:"not null" json:"body"`
	ReadAt         *time.Time `json:"readAt"`

	Sender User `gorm:"foreignKey:SenderId;references:ID" json:"sender"`
}

type Messages []Message

type OpenConversationInput struct {
	OwnerId    uint  `json:"ownerId" validate:"required"`
	PropertyId *uint `json:"propertyId"`
}

type SendMessageInput struct {
	Body string `json:"body" validate:"required,max=4000"`
}

type FilterMessages struct {
	Pagination
	Since uint `json:"since" query:"since"`
}

// ConversationSummary is what the inbox screen renders: the conversation
// plus the other participant and the unread count for the requesting user.
type ConversationSummary struct {
	Conversation
	Partner     User  `json:"partner"`
	UnreadCount int64 `json:"unreadCount"`
}
