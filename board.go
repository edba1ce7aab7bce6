package main

import "fmt"

const (
	BoardWidth  = 7
	BoardHeight = 6
	BoardCells  = BoardWidth * BoardHeight
)

type Cell int

const CellEmpty Cell = 0

// Board is the fixed 6x7 gravity grid. Row 0 is the top row, row 5 the
// bottom; pieces dropped in a column settle in the highest-index empty row.
type Board struct {
	cells [BoardCells]Cell
}

func NewBoard() Board {
	return Board{}
}

func (b Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < BoardHeight && col < BoardWidth
}

// ColumnOpen reports whether a drop in col can land, i.e. col is in range
// and the top cell of the column is still empty.
func (b Board) ColumnOpen(col int) bool {
	return col >= 0 && col < BoardWidth && b.At(0, col) == CellEmpty
}

// Drop settles a piece for player in col and returns the landing row.
// It fails when the column is out of range or already full.
func (b *Board) Drop(col int, player Player) (int, bool) {
	if !b.ColumnOpen(col) {
		return -1, false
	}
	for row := BoardHeight - 1; row >= 0; row-- {
		if b.At(row, col) == CellEmpty {
			b.cells[b.index(row, col)] = Cell(player)
			return row, true
		}
	}
	return -1, false
}

// RemoveAndCollapse clears the cell at (row, col) and shifts every cell
// above it in the column down by one, leaving the top cell empty. What the
// cell held is not checked here; that is the caller's responsibility.
func (b *Board) RemoveAndCollapse(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	for r := row; r > 0; r-- {
		b.cells[b.index(r, col)] = b.cells[b.index(r-1, col)]
	}
	b.cells[b.index(0, col)] = CellEmpty
	return true
}

func (b Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// Snapshot flattens the grid row-major (index = row*7 + col) for the
// search-engine request contract.
func (b Board) Snapshot() []int32 {
	cells := make([]int32, BoardCells)
	for i, cell := range b.cells {
		cells[i] = int32(cell)
	}
	return cells
}

// BoardFromSnapshot rebuilds a board from a flattened row-major snapshot.
func BoardFromSnapshot(cells []int32) (Board, error) {
	var b Board
	if len(cells) != BoardCells {
		return b, fmt.Errorf("snapshot has %d cells, want %d", len(cells), BoardCells)
	}
	for i, value := range cells {
		if value < -1 || value > 1 {
			return b, fmt.Errorf("snapshot cell %d holds %d, want -1, 0 or 1", i, value)
		}
		b.cells[i] = Cell(value)
	}
	return b, nil
}

func (b Board) index(row, col int) int {
	return row*BoardWidth + col
}
