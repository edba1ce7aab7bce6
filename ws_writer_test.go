package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestPumpClientWritesDeliversFramesAndStopsOnClose(t *testing.T) {
	send := make(chan []byte, 2)
	result := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		result <- pumpClientWrites(conn, send)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("expected the dial to succeed, got %v", err)
	}
	defer conn.Close()

	send <- mustMarshal(wsMessage{Type: "status"})
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("expected a frame from the writer, got %v", err)
	}
	var msg wsMessage
	if err := json.Unmarshal(frame, &msg); err != nil || msg.Type != "status" {
		t.Fatalf("expected a status frame, got %s (%v)", frame, err)
	}

	close(send)
	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("expected a clean stop after the channel closed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the writer to stop after the channel closed")
	}
}

func TestPingFrameIsWellFormed(t *testing.T) {
	var msg wsMessage
	if err := json.Unmarshal(statusPingFrame, &msg); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if msg.Type != "ping" {
		t.Fatalf("expected a ping frame, got %q", msg.Type)
	}
}
