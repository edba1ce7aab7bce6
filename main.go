package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	SessionID    string            `json:"session_id"`
	Variant      string            `json:"variant"`
	SoloMode     bool              `json:"solo_mode"`
	Difficulty   string            `json:"difficulty"`
	Board        [][]int           `json:"board"`
	NextPlayer   int               `json:"next_player"`
	Winner       int               `json:"winner"`
	Status       string            `json:"status"`
	Event        bool              `json:"event"`
	EventMessage string            `json:"event_message"`
	EngineLoaded bool              `json:"engine_loaded"`
	History      []historyEntryDTO `json:"history"`
}

type historyEntryDTO struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Player  int  `json:"player"`
	IsAi    bool `json:"is_ai"`
	Removal bool `json:"removal"`
}

type createGameRequest struct {
	Variant    string `json:"variant"`
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func main() {
	config := LoadConfigFromEnv()
	loadTTPersistence(config)
	sessions := NewSessionManager(nil)
	var backlog *searchBacklog
	if config.AiUseTranspositionTable {
		backlog = newSearchBacklog(config)
		sessions.AttachBacklog(backlog)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/games", func(w http.ResponseWriter, r *http.Request) {
		var payload createGameRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings, err := settingsFromRequest(payload)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		session := sessions.Create(settings)
		writeJSON(w, http.StatusCreated, sessionStatus(session))
	})

	r.Get("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown session"})
			return
		}
		writeJSON(w, http.StatusOK, sessionStatus(session))
	})

	r.Post("/api/games/{id}/move", func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown session"})
			return
		}
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if err := session.Controller.ApplyHumanMove(Move{Row: payload.Row, Col: payload.Col}); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": moveErrorReason(err)})
			return
		}
		status := sessionStatus(session)
		session.Hub.Publish(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/games/{id}/ai-move", func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown session"})
			return
		}
		if err := session.Controller.RunAITurn(); err != nil {
			// The search engine broke its contract; the engine state is
			// untouched.
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": moveErrorReason(err)})
			return
		}
		sessions.Deepen(session.Controller.State(), session.Controller.Settings())
		status := sessionStatus(session)
		session.Hub.Publish(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Delete("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		removed := sessions.Remove(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
	})

	r.Get("/ws/{id}", func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		serveWS(session, w, r)
	})

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[server] listening on %s", config.ListenAddr)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[server] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[server] forced close failed: %v", closeErr)
		}
	}
	sessions.CloseAll()
	if backlog != nil {
		backlog.close()
	}
	persistTTPersistence(config)
	if runErr != nil {
		log.Printf("[server] exiting after server error: %v", runErr)
	}
}

func serveWS(session *GameSession, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: session.Hub, send: make(chan []byte, 16)}
	session.Hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})

	go func() {
		defer conn.Close()
		if err := pumpClientWrites(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			session.Hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})
		}
	}
}

func settingsFromRequest(payload createGameRequest) (GameSettings, error) {
	settings := DefaultGameSettings()
	variant, err := ParseVariant(payload.Variant)
	if err != nil {
		return settings, err
	}
	settings.Variant = variant
	switch payload.Mode {
	case "solo":
		settings.SoloMode = true
	case "local", "":
		settings.SoloMode = false
	default:
		return settings, errors.New("unknown mode " + payload.Mode)
	}
	difficulty, err := ParseDifficulty(payload.Difficulty)
	if err != nil {
		return settings, err
	}
	settings.Difficulty = difficulty
	return settings, nil
}

func sessionStatus(session *GameSession) StatusResponse {
	state := session.Controller.State()
	settings := session.Controller.Settings()
	winner := 0
	if player, ok := state.Winner(); ok {
		winner = int(player)
	}
	return StatusResponse{
		SessionID:    session.ID,
		Variant:      settings.Variant.String(),
		SoloMode:     settings.SoloMode,
		Difficulty:   settings.Difficulty.String(),
		Board:        boardToSlice(state.Board),
		NextPlayer:   int(state.CurrentPlayer),
		Winner:       winner,
		Status:       statusToString(state.Status),
		Event:        state.Event,
		EventMessage: state.EventMessage,
		EngineLoaded: session.Controller.HasSearcher(),
		History:      historyToDTO(session.Controller.History()),
	}
}

func boardToSlice(board Board) [][]int {
	rows := make([][]int, BoardHeight)
	for row := 0; row < BoardHeight; row++ {
		rows[row] = make([]int, BoardWidth)
		for col := 0; col < BoardWidth; col++ {
			rows[row][col] = int(board.At(row, col))
		}
	}
	return rows
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusVictory:
		return "victory"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryDTO{
			Row:     entry.Move.Row,
			Col:     entry.Move.Col,
			Player:  int(entry.Player),
			IsAi:    entry.IsAI,
			Removal: entry.Removal,
		})
	}
	return result
}

func moveErrorReason(err error) string {
	var invalid *InvalidMoveError
	if errors.As(err, &invalid) {
		return invalid.Reason
	}
	return err.Error()
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
