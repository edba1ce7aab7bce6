package main

const removalEventMessage = "remove an opponent piece"

// victimScanOrder is the AI's removal-target column priority, center out.
var victimScanOrder = [BoardWidth]int{3, 2, 4, 1, 5, 0, 6}

// Game is one rule-engine instance. It is mutated only through ApplyMove and
// RunAITurn, and the caller serializes all access (see GameController).
type Game struct {
	settings GameSettings
	state    GameState
	history  MoveHistory
	searcher MoveSearcher
}

func NewGame(settings GameSettings, searcher MoveSearcher) *Game {
	g := &Game{}
	g.Reset(settings, searcher)
	return g
}

func (g *Game) Reset(settings GameSettings, searcher MoveSearcher) {
	g.settings = settings
	g.state.Reset()
	g.history.Clear()
	g.searcher = searcher
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) HasSearcher() bool {
	return g.searcher != nil
}

// ApplyMove runs one human turn. A column drop outside the removal event,
// a removal target inside it. Validation precedes mutation: on an
// InvalidMoveError the board and turn are exactly as before the call.
func (g *Game) ApplyMove(move Move) error {
	return g.applyMove(move, false)
}

func (g *Game) applyMove(move Move, isAI bool) error {
	if g.state.Status != StatusRunning {
		return invalidMove(reasonGameFinished)
	}
	if g.settings.Variant == VariantRemoval && g.state.Event {
		return g.applyRemovalTarget(move, isAI)
	}
	return g.applyDrop(move, isAI)
}

func (g *Game) applyDrop(move Move, isAI bool) error {
	player := g.state.CurrentPlayer
	row, ok := g.state.Board.Drop(move.Col, player)
	if !ok {
		return invalidMove(reasonColumnFull)
	}
	g.recordMove(NewTarget(row, move.Col), isAI, false)
	switch {
	case HasRun(g.state.Board, row, move.Col, player, winRunLength):
		// No flip: the current player identifies the winner.
		g.state.Status = StatusVictory
	case g.settings.Variant == VariantRemoval && HasRun(g.state.Board, row, move.Col, player, eventRunLength):
		// Same player keeps the turn for the bonus removal.
		g.state.Event = true
		g.state.EventMessage = removalEventMessage
	case g.state.Board.IsFull():
		g.state.Status = StatusDraw
	default:
		g.state.CurrentPlayer = otherPlayer(player)
	}
	return nil
}

func (g *Game) applyRemovalTarget(move Move, isAI bool) error {
	opponent := otherPlayer(g.state.CurrentPlayer)
	if !g.state.Board.InBounds(move.Row, move.Col) {
		return invalidMove(reasonTargetOutside)
	}
	if g.state.Board.At(move.Row, move.Col) != Cell(opponent) {
		// The event stays open so the same player can retry.
		return invalidMove(reasonTargetNotFoe)
	}
	g.state.Board.RemoveAndCollapse(move.Row, move.Col)
	g.recordMove(move, isAI, true)

	redWins, yellowWins := columnWinners(g.state.Board, move.Col)
	actorWins := redWins
	opponentWins := yellowWins
	if g.state.CurrentPlayer == PlayerYellow {
		actorWins, opponentWins = yellowWins, redWins
	}
	switch {
	case actorWins && opponentWins:
		g.state.Status = StatusDraw
	case actorWins:
		g.state.Status = StatusVictory
	case opponentWins:
		// Self-inflicted loss: reassign so the current player still names
		// the winner.
		g.state.Status = StatusVictory
		g.state.CurrentPlayer = opponent
	default:
		g.state.CurrentPlayer = opponent
	}
	g.clearEvent()
	return nil
}

// RunAITurn asks the search engine for a column and plays it through the
// normal move path. It is a no-op outside solo mode, when the turn is not
// the AI's, or when the search engine failed to load; in that last case the
// caller has to notice the stalled turn, the engine stays silent.
func (g *Game) RunAITurn() error {
	if !g.settings.SoloMode || g.state.Status != StatusRunning || g.state.CurrentPlayer != AIControlledPlayer {
		return nil
	}
	if g.searcher == nil {
		return nil
	}
	if g.state.Event {
		target, ok := g.selectVictim()
		if !ok {
			// Nothing left to remove: drop the event and pass the turn.
			g.clearEvent()
			g.state.CurrentPlayer = otherPlayer(g.state.CurrentPlayer)
			return nil
		}
		return g.applyMove(target, true)
	}
	col := g.searcher.BestMove(SearchRequest{
		Board: g.state.Board.Snapshot(),
		Depth: g.settings.Difficulty.SearchDepth(),
		Mode:  g.settings.Variant.ModeCode(),
	})
	return g.applyMove(NewDrop(col), true)
}

// selectVictim scans columns center out and rows bottom up for the first
// opponent piece to remove during the AI's event sub-phase.
func (g *Game) selectVictim() (Move, bool) {
	opponent := otherPlayer(g.state.CurrentPlayer)
	for _, col := range victimScanOrder {
		for row := BoardHeight - 1; row >= 0; row-- {
			if g.state.Board.At(row, col) == Cell(opponent) {
				return NewTarget(row, col), true
			}
		}
	}
	return Move{}, false
}

func (g *Game) recordMove(move Move, isAI bool, removal bool) {
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.history.Push(HistoryEntry{
		Move:    move,
		Player:  g.state.CurrentPlayer,
		IsAI:    isAI,
		Removal: removal,
	})
}

func (g *Game) clearEvent() {
	g.state.Event = false
	g.state.EventMessage = ""
}
