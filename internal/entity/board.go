package entity

// BoardSize is the edge length of the cube.
const BoardSize = 3

// Coord addresses one cell of the cube, each component in [0,2].
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (that Coord) InBounds() bool {
	return that.X >= 0 && that.X < BoardSize &&
		that.Y >= 0 && that.Y < BoardSize &&
		that.Z >= 0 && that.Z < BoardSize
}

// IsCorner reports whether the cell is one of the 8 cube corners.
func (that Coord) IsCorner() bool {
	return that.X != 1 && that.Y != 1 && that.Z != 1
}

// Board is the 3x3x3 grid of cells, indexed [x][y][z]. It is a value
// type on purpose: the bot does its hypothetical lookahead on plain
// copies, so the real game state is never touched by a simulation.
type Board [BoardSize][BoardSize][BoardSize]string

func (that Board) At(cell Coord) string {
	return that[cell.X][cell.Y][cell.Z]
}

func (that *Board) Set(cell Coord, mark string) {
	that[cell.X][cell.Y][cell.Z] = mark
}

// WinningMark scans all 49 lines and returns the mark holding a
// completed one, or EmptyCell if no line is complete. A legal game
// admits at most one winning mark, so the first hit is the answer.
func (that Board) WinningMark() string {
	for _, line := range Lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			for z := 0; z < BoardSize; z++ {
				if that[x][y][z] == EmptyCell {
					return false
				}
			}
		}
	}

	return true
}

// EmptyCells enumerates the free cells in a fixed order (x outer, y
// middle, z inner). The bot breaks ties by first-found order, so the
// order is part of the contract.
func (that Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, BoardSize*BoardSize*BoardSize)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			for z := 0; z < BoardSize; z++ {
				if that[x][y][z] == EmptyCell {
					cells = append(cells, Coord{x, y, z})
				}
			}
		}
	}

	return cells
}
