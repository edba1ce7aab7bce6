package main

// Player is one of the two piece owners. The values double as cell values,
// so an empty cell (0) never maps to a player.
type Player int

const (
	PlayerYellow Player = -1
	PlayerRed    Player = 1
)

// AIControlledPlayer is the single side the search engine plays in solo
// games. Yellow always moves first, so the engine answers second.
const AIControlledPlayer = PlayerRed

type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusVictory
	StatusDraw
)

// GameState is the variant-agnostic engine state. After a victory the
// current player is the winner; the engine never flips the turn on a
// winning move.
type GameState struct {
	Board         Board
	CurrentPlayer Player
	Status        GameStatus
	Event         bool
	EventMessage  string
	HasLastMove   bool
	LastMove      Move
}

func DefaultGameState() GameState {
	state := GameState{}
	state.Reset()
	return state
}

func (s *GameState) Reset() {
	s.Board = NewBoard()
	s.CurrentPlayer = PlayerYellow
	s.Status = StatusRunning
	s.Event = false
	s.EventMessage = ""
	s.HasLastMove = false
	s.LastMove = Move{Row: -1, Col: -1}
}

// Winner returns the winning player when the game ended in a victory.
func (s GameState) Winner() (Player, bool) {
	if s.Status != StatusVictory {
		return 0, false
	}
	return s.CurrentPlayer, true
}

func otherPlayer(player Player) Player {
	return -player
}

func (p Player) String() string {
	if p == PlayerYellow {
		return "Yellow"
	}
	return "Red"
}
