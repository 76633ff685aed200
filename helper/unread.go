package helper

import (
	"context"
	"fmt"
	"log"
	"time"

	"kost_market/database"
	"kost_market/model"
)

// Unread counts are a derived cache: redis holds the per-user,
// per-conversation count and every message write or mark-read invalidates
// it. On a miss we COUNT from the table, so the cache can always be dropped.

func unreadKey(userId, conversationId uint) string {
	return fmt.Sprintf("chat:unread:%d:%d", userId, conversationId)
}

func UnreadCount(ctx context.Context, userId, conversationId uint) int64 {
	count, err := database.Redis.Get(ctx, unreadKey(userId, conversationId)).Int64()
	if err == nil {
		return count
	}

	var fresh int64
	err = database.DB.Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationId, userId).
		Count(&fresh).Error
	if err != nil {
		log.Printf("failed to count unread messages: %v", err)
		return 0
	}

	if err := database.Redis.Set(ctx, unreadKey(userId, conversationId), fresh, 24*time.Hour).Err(); err != nil {
		log.Printf("failed to cache unread count: %v", err)
	}
	return fresh
}

// InvalidateUnread drops the cached count for one participant.
func InvalidateUnread(ctx context.Context, userId, conversationId uint) {
	if err := database.Redis.Del(ctx, unreadKey(userId, conversationId)).Err(); err != nil {
		log.Printf("failed to invalidate unread count: %v", err)
	}
}
