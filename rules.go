package main

const (
	winRunLength   = 4
	eventRunLength = 3
)

// Line directions: horizontal, vertical, diagonal \ and diagonal /.
var runDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// HasRun reports whether the piece at (row, col) anchors a run of at least
// length cells owned by player. The anchor counts once; each direction is
// extended independently both ways and an out-of-bounds or foreign cell
// stops the scan, no wraparound.
func HasRun(b Board, row, col int, player Player, length int) bool {
	for _, dir := range runDirections {
		dr, dc := dir[0], dir[1]
		count := 1
		count += countRun(b, row, col, player, dr, dc)
		count += countRun(b, row, col, player, -dr, -dc)
		if count >= length {
			return true
		}
	}
	return false
}

func countRun(b Board, row, col int, player Player, dr, dc int) int {
	count := 0
	r, c := row+dr, col+dc
	for b.InBounds(r, c) && b.At(r, c) == Cell(player) {
		count++
		r += dr
		c += dc
	}
	return count
}

// columnWinners rescans every occupied cell of col for a winning run after a
// collapse there. The shift can complete or destroy alignments for either
// side anywhere along the column, so both outcomes are reported
// independently and may hold at once.
func columnWinners(b Board, col int) (redWins, yellowWins bool) {
	for row := 0; row < BoardHeight; row++ {
		cell := b.At(row, col)
		if cell == CellEmpty {
			continue
		}
		player := Player(cell)
		if !HasRun(b, row, col, player, winRunLength) {
			continue
		}
		if player == PlayerRed {
			redWins = true
		} else {
			yellowWins = true
		}
	}
	return redWins, yellowWins
}
