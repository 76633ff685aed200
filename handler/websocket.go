package handler

import (
	"context"
	"sync"

	"kost_market/database"
	"kost_market/model"

	"github.com/gofiber/contrib/websocket"
)

var (
	chatClients = make(map[string]map[*websocket.Conn]bool)
	chatMu      sync.Mutex
)

// ConversationWebsocket pushes new messages to connected clients. Writers go
// through SendMessage, which publishes to the conversation's redis channel;
// every server instance subscribed here relays the payload to its sockets.
func ConversationWebsocket(c *websocket.Conn) {
	code := c.Params("code")

	defer func() {
		chatMu.Lock()
		if chatClients[code] != nil {
			delete(chatClients[code], c)
		}
		chatMu.Unlock()
		c.Close()
	}()

	chatMu.Lock()
	if chatClients[code] == nil {
		chatClients[code] = make(map[*websocket.Conn]bool)
	}
	chatClients[code][c] = true
	chatMu.Unlock()

	// Send the recent history once so the client can render immediately.
	var recent model.Messages
	database.DB.
		Where("conversation_id = (?)",
			database.DB.Model(&model.Conversation{}).Select("id").Where("code = ?", code)).
		Order("id DESC").Limit(50).Find(&recent)
	c.WriteJSON(recent)

	pubsub := database.Redis.Subscribe(context.Background(), conversationChannel(code))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		chatMu.Lock()
		for conn := range chatClients[code] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(chatClients[code], conn)
			}
		}
		chatMu.Unlock()
	}
}
