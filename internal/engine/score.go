package engine

import "github.com/rocketscienceinc/cubetactoe-backend/internal/entity"

const (
	centerWeight = 0.1
	cornerBonus  = 0.05
	lineWeight   = 0.02
)

// positionValue is the static score blended into a candidate's rollout
// average: center proximity, a flat corner bonus and the live line
// potential through the cell.
func positionValue(board entity.Board, cell entity.Coord, mark string) float64 {
	score := centerCloseness(cell) * centerWeight

	if cell.IsCorner() {
		score += cornerBonus
	}

	return score + linePotential(board, cell, mark)*lineWeight
}

// linePotential counts the winning lines through the cell that the
// opponent has not blocked yet, each weighted up by the mover's marks
// already sitting on it.
func linePotential(board entity.Board, cell entity.Coord, mark string) float64 {
	opponent := entity.OpponentMark(mark)

	var total float64
	for _, line := range entity.LinesThrough(cell) {
		own := 0
		blocked := false

		for _, c := range line {
			switch board.At(c) {
			case mark:
				own++
			case opponent:
				blocked = true
			}
		}

		if !blocked {
			total += 1 + float64(own)
		}
	}

	return total
}

// placementScore is the coarse preference used inside playouts.
func placementScore(cell entity.Coord) float64 {
	score := centerCloseness(cell) * 10

	if cell.IsCorner() {
		score += 5
	}

	return score
}

// centerCloseness is 1 at the center cell and falls off linearly with
// the normalized Manhattan distance from it.
func centerCloseness(cell entity.Coord) float64 {
	distance := float64(abs(cell.X-1)+abs(cell.Y-1)+abs(cell.Z-1)) / 3.0
	return 1 - distance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
