package main

// Move is either a column drop (Row is ignored, gravity derives it) or an
// explicit removal target during the removal variant's event sub-phase.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewDrop(col int) Move {
	return Move{Row: -1, Col: col}
}

func NewTarget(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

// InvalidMoveError reports a rule violation. The engine state is guaranteed
// unchanged when it is returned; the caller re-solicits input from the same
// player.
type InvalidMoveError struct {
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return "invalid move: " + e.Reason
}

func invalidMove(reason string) error {
	return &InvalidMoveError{Reason: reason}
}

const (
	reasonColumnFull    = "column full or invalid"
	reasonTargetOutside = "removal target out of range"
	reasonTargetNotFoe  = "must target an opponent piece"
	reasonGameFinished  = "game already finished"
)
