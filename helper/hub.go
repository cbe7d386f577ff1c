package helper

import (
	"encoding/json"
	"sync"
)

// Hub fans out notification messages to connected users. One connection
// per user; a newer connection replaces the previous one.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Notification
	mu         sync.Mutex
}

type Client struct {
	UserID string
	Send   chan []byte
}

type Notification struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Notification),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.UserID] = client
			h.mu.Unlock()
		case client := <-h.Unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserID]; ok && current == client {
				delete(h.clients, client.UserID)
				close(client.Send)
			}
			h.mu.Unlock()
		case message := <-h.Broadcast:
			h.deliver(message)
		}
	}
}

// Notify queues a message for a user. Delivery is best-effort: offline
// users and full buffers drop the message.
func (h *Hub) Notify(userID, content string) {
	h.Broadcast <- Notification{UserID: userID, Content: content}
}

func (h *Hub) deliver(message Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[message.UserID]
	if !ok {
		return
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

// Connected reports whether a user currently has a live connection.
func (h *Hub) Connected(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.clients[userID]
	return ok
}
