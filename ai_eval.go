package main

const winScore = 1_000_000.0

type evalWeights struct {
	Three         float64
	Two           float64
	OpponentThree float64
	Center        float64
}

// Removal mode weighs three-runs higher on both sides: there a three is not
// just a threat, it triggers the piece-removal event.
var modeWeights = [2]evalWeights{
	SearchModeClassic: {Three: 50.0, Two: 10.0, OpponentThree: 80.0, Center: 6.0},
	SearchModeRemoval: {Three: 90.0, Two: 10.0, OpponentThree: 130.0, Center: 6.0},
}

// evalWindows lists every 4-cell line segment of the grid as flat cell
// indices, built once at startup.
var evalWindows = buildEvalWindows()

func buildEvalWindows() [][4]int {
	windows := [][4]int{}
	index := func(row, col int) int { return row*BoardWidth + col }
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			for _, dir := range runDirections {
				dr, dc := dir[0], dir[1]
				endRow := row + 3*dr
				endCol := col + 3*dc
				if endRow < 0 || endRow >= BoardHeight || endCol < 0 || endCol >= BoardWidth {
					continue
				}
				windows = append(windows, [4]int{
					index(row, col),
					index(row+dr, col+dc),
					index(row+2*dr, col+2*dc),
					index(endRow, endCol),
				})
			}
		}
	}
	return windows
}

// evaluateBoard scores a position from the AI side's point of view. Won
// positions are detected during the search itself, so the windows only weigh
// partial runs.
func evaluateBoard(b Board, mode int) float64 {
	if mode != SearchModeClassic && mode != SearchModeRemoval {
		mode = SearchModeClassic
	}
	weights := modeWeights[mode]
	score := 0.0
	for _, window := range evalWindows {
		ai, opp := 0, 0
		for _, idx := range window {
			switch b.cells[idx] {
			case Cell(AIControlledPlayer):
				ai++
			case CellEmpty:
			default:
				opp++
			}
		}
		if ai > 0 && opp > 0 {
			continue
		}
		switch {
		case ai == 3:
			score += weights.Three
		case ai == 2:
			score += weights.Two
		case opp == 3:
			score -= weights.OpponentThree
		case opp == 2:
			score -= weights.Two
		}
	}
	centerCol := BoardWidth / 2
	for row := 0; row < BoardHeight; row++ {
		switch b.At(row, centerCol) {
		case Cell(AIControlledPlayer):
			score += weights.Center
		case Cell(otherPlayer(AIControlledPlayer)):
			score -= weights.Center
		}
	}
	return score
}
