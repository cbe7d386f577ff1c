package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

type NotificationService struct {
	hub *helper.Hub
}

func NewNotificationService(hub *helper.Hub) *NotificationService {
	return &NotificationService{hub: hub}
}

// Upgrade gates the route to real WebSocket handshakes.
func (s *NotificationService) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// GET /api/ws/notifications
func (s *NotificationService) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}

		client := &helper.Client{
			UserID: userID.String(),
			Send:   make(chan []byte, 8),
		}
		s.hub.Register <- client

		// Writer: pumps queued notifications until the hub closes Send.
		go func() {
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		// Reader: we ignore client messages, only watch for disconnect.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		s.hub.Unregister <- client
	})
}
