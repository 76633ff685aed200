package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"kost_market/config"
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func conversationChannel(code string) string {
	return fmt.Sprintf("chat:conv:%s", code)
}

// findConversationForUser loads a conversation by public code and checks
// the requesting user is a participant.
func findConversationForUser(code string, userId uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := database.DB.
		Preload("Renter").
		Preload("Owner").
		Preload("Property").
		Where("code = ?", code).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	if conversation.RenterId != userId && conversation.OwnerId != userId {
		return nil, gorm.ErrRecordNotFound
	}
	return &conversation, nil
}

// OpenConversation returns the existing renter↔owner thread for the
// property, creating it on first contact.
func OpenConversation(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	input, ok := c.Locals("OpenConversation").(model.OpenConversationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.OwnerId == user.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CAN_NOT_SEND_TO_YOURSELF, nil)
	}

	var owner model.User
	if err := db.First(&owner, input.OwnerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	}

	if input.PropertyId != nil {
		var property model.Property
		if err := db.First(&property, *input.PropertyId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
		}
		if property.OwnerId != owner.ID {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("property does not belong to owner"))
		}
	}

	query := db.Where("renter_id = ? AND owner_id = ?", user.ID, owner.ID)
	if input.PropertyId != nil {
		query = query.Where("property_id = ?", *input.PropertyId)
	} else {
		query = query.Where("property_id IS NULL")
	}

	var conversation model.Conversation
	err := query.First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conversation = model.Conversation{
			Code:       uuid.NewString(),
			RenterId:   user.ID,
			OwnerId:    owner.ID,
			PropertyId: input.PropertyId,
		}
		if err := db.Create(&conversation).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	} else if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, conversation)
}

// GetMyConversations is the inbox: newest activity first, with the chat
// partner and the unread count for each thread.
func GetMyConversations(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var conversations model.Conversations
	err := db.
		Preload("Renter").
		Preload("Owner").
		Preload("Property").
		Where("renter_id = ? OR owner_id = ?", user.ID, user.ID).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&conversations).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summaries := make([]model.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		partner := conversation.Owner
		if conversation.OwnerId == user.ID {
			partner = conversation.Renter
		}
		summaries = append(summaries, model.ConversationSummary{
			Conversation: conversation,
			Partner:      partner,
			UnreadCount:  helper.UnreadCount(c.Context(), user.ID, conversation.ID),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, summaries)
}

// GetMessages serves the polling reader. `since` returns only messages
// with a greater id, so clients poll cheaply.
func GetMessages(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	conversation, err := findConversationForUser(c.Params("code"), user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CONVERSATION_NOT_FOUND, err)
	}

	filterInput := new(model.FilterMessages)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.
		Preload("Sender").
		Where("conversation_id = ?", conversation.ID)
	if filterInput.Since > 0 {
		query = query.Where("id > ?", filterInput.Since)
	}

	var messages model.Messages
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("id ASC").Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

// SendMessage appends to the thread, bumps the conversation, invalidates
// the recipient's unread cache, fans out over redis and mails the
// recipient when their settings allow it.
func SendMessage(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	conversation, err := findConversationForUser(c.Params("code"), user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CONVERSATION_NOT_FOUND, err)
	}

	input, ok := c.Locals("SendMessage").(model.SendMessageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	message := model.Message{
		ConversationId: conversation.ID,
		SenderId:       user.ID,
		Body:           input.Body,
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("id = ?", conversation.ID).
			Update("last_message_at", now).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	recipient := conversation.Owner
	if conversation.OwnerId == user.ID {
		recipient = conversation.Renter
	}

	helper.InvalidateUnread(c.Context(), recipient.ID, conversation.ID)
	publishMessage(conversation.Code, message)
	notifyRecipient(recipient, user, conversation, input.Body)

	return utils.SuccessResponse(c, fiber.StatusCreated, message)
}

// MarkConversationRead marks every message from the other side as read and
// drops the cached count.
func MarkConversationRead(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	conversation, err := findConversationForUser(c.Params("code"), user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CONVERSATION_NOT_FOUND, err)
	}

	now := time.Now()
	result := database.DB.Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversation.ID, user.ID).
		Update("read_at", now)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, result.Error)
	}

	helper.InvalidateUnread(c.Context(), user.ID, conversation.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"read": result.RowsAffected})
}

// GetUnreadTotal feeds the inbox badge.
func GetUnreadTotal(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	var conversationIds []uint
	if err := database.DB.Model(&model.Conversation{}).
		Where("renter_id = ? OR owner_id = ?", user.ID, user.ID).
		Pluck("id", &conversationIds).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var total int64
	for _, id := range conversationIds {
		total += helper.UnreadCount(c.Context(), user.ID, id)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"unread": total})
}

func publishMessage(code string, message model.Message) {
	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("failed to marshal message for fanout: %v", err)
		return
	}
	if err := database.Redis.Publish(context.Background(), conversationChannel(code), payload).Err(); err != nil {
		log.Printf("failed to publish message: %v", err)
	}
}

func notifyRecipient(recipient, sender model.User, conversation *model.Conversation, body string) {
	var setting model.NotificationSetting
	err := database.DB.
		Where(model.NotificationSetting{UserId: recipient.ID}).
		FirstOrCreate(&setting).Error
	if err != nil {
		log.Printf("failed to load notification settings: %v", err)
		return
	}
	if !setting.ChatEmail || recipient.Email == "" {
		return
	}

	recipientName := recipient.UserName
	if recipient.FullName != nil {
		recipientName = *recipient.FullName
	}
	senderName := sender.UserName
	if sender.FullName != nil {
		senderName = *sender.FullName
	}
	propertyName := ""
	if conversation.Property != nil {
		propertyName = conversation.Property.Name
	}

	preview := body
	if len(preview) > 140 {
		preview = preview[:140] + "…"
	}

	utils.SendNewMessageEmail(recipient.Email, utils.NewMessageData{
		RecipientName: recipientName,
		SenderName:    senderName,
		PropertyName:  propertyName,
		Preview:       preview,
		InboxLink:     fmt.Sprintf("%s/chat/%s", config.ConfigOr("APP_BASE_URL", "http://localhost:5173"), conversation.Code),
	})
}
