package helper

import (
	"encoding/json"
	"testing"
	"time"
)

func startHub() *Hub {
	hub := NewHub()
	go hub.Run()
	return hub
}

func TestHubDeliversToConnectedUser(t *testing.T) {
	hub := startHub()

	client := &Client{UserID: "user-1", Send: make(chan []byte, 1)}
	hub.Register <- client

	hub.Notify("user-1", "Pengajuan disetujui")

	select {
	case payload := <-client.Send:
		var msg Notification
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if msg.Content != "Pengajuan disetujui" {
			t.Errorf("expected content to round-trip, got %q", msg.Content)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a delivered message")
	}
}

func TestHubDropsForOfflineUser(t *testing.T) {
	hub := startHub()

	// Must not block or panic with nobody connected.
	hub.Notify("ghost", "hello")

	if hub.Connected("ghost") {
		t.Error("ghost should not be connected")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := startHub()

	client := &Client{UserID: "user-2", Send: make(chan []byte, 1)}
	hub.Register <- client

	for i := 0; i < 50 && !hub.Connected("user-2"); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if !hub.Connected("user-2") {
		t.Fatal("expected user-2 to be connected after register")
	}

	hub.Unregister <- client

	select {
	case _, open := <-client.Send:
		if open {
			t.Error("expected Send to be closed after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("expected Send to be closed")
	}
}

func TestHubReplacesConnectionPerUser(t *testing.T) {
	hub := startHub()

	old := &Client{UserID: "user-3", Send: make(chan []byte, 1)}
	hub.Register <- old
	replacement := &Client{UserID: "user-3", Send: make(chan []byte, 1)}
	hub.Register <- replacement

	hub.Notify("user-3", "ping")

	select {
	case <-replacement.Send:
	case <-time.After(time.Second):
		t.Fatal("expected the replacement connection to receive the message")
	}

	// Unregistering the stale client must not disconnect the newer one.
	hub.Unregister <- old
	for i := 0; i < 50 && !hub.Connected("user-3"); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if !hub.Connected("user-3") {
		t.Error("expected user-3 to stay connected through stale unregister")
	}
}
