package main

import "sync"

// GameController serializes all access to one Game instance. The engine
// itself is synchronous and single-threaded; this mutex is the contract
// that callers (HTTP handlers, the websocket hub feeder) go through.
type GameController struct {
	mu   sync.Mutex
	game *Game
}

func NewGameController(settings GameSettings, searcher MoveSearcher) *GameController {
	return &GameController{game: NewGame(settings, searcher)}
}

// ApplyHumanMove rejects moves while it is the AI's turn in a solo game;
// everything else is the engine's own validation.
func (gc *GameController) ApplyHumanMove(move Move) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	settings := gc.game.Settings()
	state := gc.game.State()
	if settings.SoloMode && state.Status == StatusRunning && state.CurrentPlayer == AIControlledPlayer {
		return invalidMove("not your turn")
	}
	return gc.game.ApplyMove(move)
}

func (gc *GameController) RunAITurn() error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.RunAITurn()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) HasSearcher() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.HasSearcher()
}

func (gc *GameController) Reset(settings GameSettings, searcher MoveSearcher) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings, searcher)
}
