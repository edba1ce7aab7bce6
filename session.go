package main

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GameSession ties one controller and one status hub to a uuid. Sessions
// share no state with each other.
type GameSession struct {
	ID         string
	Controller *GameController
	Hub        *Hub
	CreatedAt  time.Time
	done       chan struct{}
}

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*GameSession
	factory  SearcherFactory
	backlog  *searchBacklog
}

func NewSessionManager(factory SearcherFactory) *SessionManager {
	if factory == nil {
		factory = DefaultSearcherFactory
	}
	return &SessionManager{
		sessions: make(map[string]*GameSession),
		factory:  factory,
	}
}

// Create starts a new game session. A search-engine load failure is not
// fatal: the session keeps a nil searcher and solo AI turns stay no-ops,
// which the caller detects as a turn that never resolves.
func (m *SessionManager) Create(settings GameSettings) *GameSession {
	var searcher MoveSearcher
	if settings.SoloMode {
		loaded, err := m.factory(GetConfig())
		if err != nil {
			log.Printf("[session] search engine unavailable, AI turns disabled: %v", err)
		} else {
			searcher = loaded
		}
	}
	session := &GameSession{
		ID:         uuid.New().String(),
		Controller: NewGameController(settings, searcher),
		Hub:        NewHub(),
		CreatedAt:  time.Now(),
		done:       make(chan struct{}),
	}
	go session.Hub.Run(session.done)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	log.Printf("[session] %s created: variant=%s solo=%t difficulty=%s",
		session.ID, settings.Variant, settings.SoloMode, settings.Difficulty)
	return session
}

// AttachBacklog hooks the background deepening workers in. Without one,
// Deepen is a no-op.
func (m *SessionManager) AttachBacklog(backlog *searchBacklog) {
	m.mu.Lock()
	m.backlog = backlog
	m.mu.Unlock()
}

// Deepen queues the position reached after an AI turn for deeper offline
// analysis.
func (m *SessionManager) Deepen(state GameState, settings GameSettings) {
	m.mu.Lock()
	backlog := m.backlog
	m.mu.Unlock()
	if backlog == nil || state.Status != StatusRunning {
		return
	}
	backlog.enqueue(backlogItem{
		board: state.Board.Snapshot(),
		depth: settings.Difficulty.SearchDepth(),
		mode:  settings.Variant.ModeCode(),
	})
}

func (m *SessionManager) Get(id string) (*GameSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *SessionManager) Remove(id string) bool {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if ok {
		close(session.done)
		log.Printf("[session] %s removed", id)
	}
	return ok
}

func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll tears every session down, used on server shutdown.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*GameSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.sessions = make(map[string]*GameSession)
	m.mu.Unlock()
	for _, session := range sessions {
		close(session.done)
	}
}
