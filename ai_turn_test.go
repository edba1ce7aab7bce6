package main

import (
	"errors"
	"testing"
)

// stubSearcher returns a fixed column and records the requests it saw.
type stubSearcher struct {
	col      int
	requests []SearchRequest
}

func (s *stubSearcher) BestMove(req SearchRequest) int {
	s.requests = append(s.requests, req)
	return s.col
}

func newSoloGame(searcher MoveSearcher) *Game {
	settings := DefaultGameSettings()
	settings.SoloMode = true
	return NewGame(settings, searcher)
}

func TestRunAITurnIsNoOpOutsideSoloMode(t *testing.T) {
	stub := &stubSearcher{col: 3}
	settings := DefaultGameSettings()
	settings.SoloMode = false
	g := NewGame(settings, stub)
	if err := g.RunAITurn(); err != nil {
		t.Fatalf("expected a silent no-op, got %v", err)
	}
	if len(stub.requests) != 0 {
		t.Fatalf("expected the search engine to stay untouched outside solo mode")
	}
}

func TestRunAITurnIsNoOpOnHumanTurn(t *testing.T) {
	stub := &stubSearcher{col: 3}
	g := newSoloGame(stub)
	// Yellow, the human, starts.
	if err := g.RunAITurn(); err != nil {
		t.Fatalf("expected a silent no-op, got %v", err)
	}
	if len(stub.requests) != 0 || g.State().Board.CountEmpty() != BoardCells {
		t.Fatalf("expected no move while it is the human's turn")
	}
}

func TestRunAITurnIsNoOpWithoutSearcher(t *testing.T) {
	g := newSoloGame(nil)
	if err := g.ApplyMove(NewDrop(3)); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	before := g.State()
	if err := g.RunAITurn(); err != nil {
		t.Fatalf("expected a silent no-op without a search engine, got %v", err)
	}
	after := g.State()
	if after.Board != before.Board || after.CurrentPlayer != before.CurrentPlayer {
		t.Fatalf("expected the stalled turn to leave the state unchanged")
	}
}

func TestRunAITurnPlaysSuggestedColumn(t *testing.T) {
	stub := &stubSearcher{col: 4}
	g := newSoloGame(stub)
	if err := g.ApplyMove(NewDrop(3)); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if err := g.RunAITurn(); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	state := g.State()
	if state.Board.At(5, 4) != Cell(PlayerRed) {
		t.Fatalf("expected the AI piece to land at the bottom of column 4")
	}
	if state.CurrentPlayer != PlayerYellow {
		t.Fatalf("expected the turn to return to the human")
	}
	if len(stub.requests) != 1 {
		t.Fatalf("expected one search request, got %d", len(stub.requests))
	}
	req := stub.requests[0]
	if len(req.Board) != BoardCells {
		t.Fatalf("expected a flattened board of %d cells, got %d", BoardCells, len(req.Board))
	}
	if req.Board[5*BoardWidth+3] != int32(PlayerYellow) {
		t.Fatalf("expected the human piece in the snapshot")
	}
	if req.Depth != DefaultGameSettings().Difficulty.SearchDepth() {
		t.Fatalf("expected the configured search depth, got %d", req.Depth)
	}
	if req.Mode != SearchModeClassic {
		t.Fatalf("expected the classic mode code, got %d", req.Mode)
	}
	entries := g.History().All()
	if len(entries) != 2 || !entries[1].IsAI {
		t.Fatalf("expected the AI move to be flagged in the history")
	}
}

func TestRunAITurnSendsRemovalModeCode(t *testing.T) {
	stub := &stubSearcher{col: 4}
	settings := DefaultGameSettings()
	settings.SoloMode = true
	settings.Variant = VariantRemoval
	settings.Difficulty = DifficultyHard
	g := NewGame(settings, stub)
	if err := g.ApplyMove(NewDrop(3)); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if err := g.RunAITurn(); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	req := stub.requests[0]
	if req.Mode != SearchModeRemoval {
		t.Fatalf("expected the removal mode code, got %d", req.Mode)
	}
	if req.Depth != DifficultyHard.SearchDepth() {
		t.Fatalf("expected the hard search depth, got %d", req.Depth)
	}
}

func TestRunAITurnRejectsIllegalEngineAnswer(t *testing.T) {
	stub := &stubSearcher{col: -1}
	g := newSoloGame(stub)
	if err := g.ApplyMove(NewDrop(3)); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	before := g.State()
	err := g.RunAITurn()
	var invalid *InvalidMoveError
	if !errors.As(err, &invalid) || invalid.Reason != reasonColumnFull {
		t.Fatalf("expected the engine answer to fail normal validation, got %v", err)
	}
	after := g.State()
	if after.Board != before.Board || after.CurrentPlayer != before.CurrentPlayer {
		t.Fatalf("expected the rejected answer to leave the state unchanged")
	}
}

func TestRunAITurnResolvesItsOwnRemovalEvent(t *testing.T) {
	stub := &stubSearcher{col: 4}
	settings := DefaultGameSettings()
	settings.SoloMode = true
	settings.Variant = VariantRemoval
	g := NewGame(settings, stub)
	// Hand the AI an open event with one Yellow victim on the board.
	place(&g.state.Board, 5, 6, PlayerYellow)
	place(&g.state.Board, 5, 1, PlayerRed)
	place(&g.state.Board, 5, 2, PlayerRed)
	place(&g.state.Board, 5, 3, PlayerRed)
	g.state.CurrentPlayer = PlayerRed
	g.state.Event = true
	g.state.EventMessage = removalEventMessage

	if err := g.RunAITurn(); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	state := g.State()
	if state.Board.At(5, 6) != CellEmpty {
		t.Fatalf("expected the AI to remove the only Yellow piece")
	}
	if state.Event {
		t.Fatalf("expected the event to close")
	}
	if state.CurrentPlayer != PlayerYellow {
		t.Fatalf("expected the turn to pass after the removal")
	}
	if len(stub.requests) != 0 {
		t.Fatalf("expected no column search during the event sub-phase")
	}
}

func TestRunAITurnPassesWhenNoVictimRemains(t *testing.T) {
	stub := &stubSearcher{col: 4}
	settings := DefaultGameSettings()
	settings.SoloMode = true
	settings.Variant = VariantRemoval
	g := NewGame(settings, stub)
	// An event with no Yellow piece anywhere cannot be resolved.
	place(&g.state.Board, 5, 1, PlayerRed)
	place(&g.state.Board, 5, 2, PlayerRed)
	place(&g.state.Board, 5, 3, PlayerRed)
	g.state.CurrentPlayer = PlayerRed
	g.state.Event = true
	g.state.EventMessage = removalEventMessage

	if err := g.RunAITurn(); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	state := g.State()
	if state.Event {
		t.Fatalf("expected the unresolvable event to be dropped")
	}
	if state.CurrentPlayer != PlayerYellow {
		t.Fatalf("expected the turn to pass to the human")
	}
}

func TestSelectVictimPrefersCenterColumns(t *testing.T) {
	stub := &stubSearcher{col: 4}
	settings := DefaultGameSettings()
	settings.SoloMode = true
	settings.Variant = VariantRemoval
	g := NewGame(settings, stub)
	// Yellow pieces in columns 0 and 3: the center one goes first.
	place(&g.state.Board, 5, 0, PlayerYellow)
	place(&g.state.Board, 5, 3, PlayerYellow)
	g.state.CurrentPlayer = PlayerRed

	target, ok := g.selectVictim()
	if !ok {
		t.Fatalf("expected a victim to be found")
	}
	if target.Row != 5 || target.Col != 3 {
		t.Fatalf("expected the center column victim first, got %+v", target)
	}
}

func TestSelectVictimScansBeyondPreferredColumns(t *testing.T) {
	settings := DefaultGameSettings()
	settings.SoloMode = true
	settings.Variant = VariantRemoval
	g := NewGame(settings, nil)
	if _, ok := g.selectVictim(); ok {
		t.Fatalf("expected no victim on an empty board")
	}
	// A lone piece in the lowest-priority column is still found.
	place(&g.state.Board, 5, 0, PlayerYellow)
	g.state.CurrentPlayer = PlayerRed
	target, ok := g.selectVictim()
	if !ok || target.Row != 5 || target.Col != 0 {
		t.Fatalf("expected the lone edge piece to be found, got %+v ok=%t", target, ok)
	}
}
