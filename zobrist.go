package main

// ZobristTable holds one random key per (cell, player) pair plus a
// side-to-move key and one key per search mode. The board is fixed
// at 6x7, so a single package-level table covers every game.
type ZobristTable struct {
	cells [BoardCells * 2]uint64
	side  uint64
	modes [2]uint64
}

var boardZobrist = newZobristTable()

func newZobristTable() *ZobristTable {
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(BoardCells)}
	table := &ZobristTable{}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	for i := range table.modes {
		table.modes[i] = rng.next()
	}
	return table
}

func (z *ZobristTable) piece(row, col int, player Player) uint64 {
	idx := (row*BoardWidth + col) * 2
	if player == PlayerRed {
		idx++
	}
	return z.cells[idx]
}

// computeHash folds the whole position, the side to move and the search
// mode into one key. The mode belongs in the key because the evaluation
// weights differ per variant, so the same position scores differently.
func computeHash(b Board, toMove Player, mode int) uint64 {
	var hash uint64
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cell := b.At(row, col)
			if cell == CellEmpty {
				continue
			}
			hash ^= boardZobrist.piece(row, col, Player(cell))
		}
	}
	if toMove == PlayerRed {
		hash ^= boardZobrist.side
	}
	if mode != SearchModeClassic && mode != SearchModeRemoval {
		mode = SearchModeClassic
	}
	hash ^= boardZobrist.modes[mode]
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
