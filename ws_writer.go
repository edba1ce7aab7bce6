package main

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	statusIdlePing     = 30 * time.Second
	statusWriteTimeout = 10 * time.Second
)

// Keep-alive frame for watchers whose session has gone quiet.
var statusPingFrame = mustMarshal(wsMessage{Type: "ping"})

// pumpClientWrites drains a client's send channel into its connection,
// stamping every write with a deadline. Idle connections get a ping so
// proxies keep them open. Returns nil once the hub closes the channel.
func pumpClientWrites(conn *websocket.Conn, send <-chan []byte) error {
	idle := time.NewTicker(statusIdlePing)
	defer idle.Stop()
	lastWrite := time.Now()

	write := func(frame []byte) error {
		conn.SetWriteDeadline(time.Now().Add(statusWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return err
		}
		lastWrite = time.Now()
		return nil
	}

	for {
		select {
		case frame, ok := <-send:
			if !ok {
				return nil
			}
			if err := write(frame); err != nil {
				return err
			}
		case <-idle.C:
			if time.Since(lastWrite) < statusIdlePing {
				continue
			}
			if err := write(statusPingFrame); err != nil {
				return err
			}
		}
	}
}
