package main

import "math"

// MinimaxSearcher is the in-process move-search engine behind the
// MoveSearcher contract: fixed-depth minimax with alpha-beta pruning over
// the seven columns, center-out move ordering, and an optional shared
// transposition table. Results are deterministic for a given position,
// depth and mode.
type MinimaxSearcher struct {
	tt *TranspositionTable
}

var searchColumnOrder = [BoardWidth]int{3, 2, 4, 1, 5, 0, 6}

func NewMinimaxSearcher(config Config) *MinimaxSearcher {
	s := &MinimaxSearcher{}
	if config.AiUseTranspositionTable {
		s.tt = searchCache.table(config.AiTtSize)
	}
	return s
}

// BestMove searches the request position for the AI side and returns the
// chosen column. A malformed snapshot yields -1, which the rule engine
// rejects through its normal validation.
func (s *MinimaxSearcher) BestMove(req SearchRequest) int {
	board, err := BoardFromSnapshot(req.Board)
	if err != nil {
		return -1
	}
	depth := req.Depth
	if depth < 1 {
		depth = 1
	}
	bestCol := -1
	bestScore := math.Inf(-1)
	for _, col := range searchColumnOrder {
		next := board
		row, ok := next.Drop(col, AIControlledPlayer)
		if !ok {
			continue
		}
		var score float64
		if HasRun(next, row, col, AIControlledPlayer, winRunLength) {
			score = winScore + float64(depth)
		} else {
			score = s.search(next, depth-1, math.Inf(-1), math.Inf(1), otherPlayer(AIControlledPlayer), req.Mode)
		}
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol
}

func (s *MinimaxSearcher) search(b Board, depth int, alpha, beta float64, toMove Player, mode int) float64 {
	if b.IsFull() {
		return 0
	}
	if depth <= 0 {
		return evaluateBoard(b, mode)
	}

	var key uint64
	if s.tt != nil {
		key = computeHash(b, toMove, mode)
		if entry, ok := s.tt.Probe(key); ok && entry.Depth >= depth {
			switch entry.Flag {
			case TTExact:
				return entry.Score
			case TTLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case TTUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}
	alphaOrig, betaOrig := alpha, beta

	maximizing := toMove == AIControlledPlayer
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	bestCol := -1
	for _, col := range searchColumnOrder {
		next := b
		row, ok := next.Drop(col, toMove)
		if !ok {
			continue
		}
		var score float64
		if HasRun(next, row, col, toMove, winRunLength) {
			// Remaining depth rewards the faster win.
			score = winScore + float64(depth)
			if !maximizing {
				score = -score
			}
		} else {
			score = s.search(next, depth-1, alpha, beta, otherPlayer(toMove), mode)
		}
		if maximizing {
			if score > best {
				best = score
				bestCol = col
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
				bestCol = col
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	if s.tt != nil {
		flag := TTExact
		if best <= alphaOrig {
			flag = TTUpper
		} else if best >= betaOrig {
			flag = TTLower
		}
		s.tt.Store(key, depth, best, flag, bestCol)
	}
	return best
}
