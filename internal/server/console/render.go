package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

func (that *Server) printIntro() {
	title := that.output.String("3D tic-tac-toe").Bold()
	fmt.Fprintf(that.output, "\n%s — get three in a row anywhere in the cube.\n", title)
	fmt.Fprintln(that.output, "Moves are entered as three coordinates, each 0-2: x y z.")
	fmt.Fprintln(that.output, "Commands: new (restart), quit.")
}

// render draws the three Z layers of the cube side by side, one 3x3
// grid per layer. The last move is highlighted.
func (that *Server) render(game *entity.Game) {
	fmt.Fprintln(that.output)
	fmt.Fprintln(that.output, "      z=0        z=1        z=2")

	for y := entity.BoardSize - 1; y >= 0; y-- {
		row := strings.Builder{}
		fmt.Fprintf(&row, "y=%d   ", y)

		for z := 0; z < entity.BoardSize; z++ {
			for x := 0; x < entity.BoardSize; x++ {
				row.WriteString(that.cellView(game, entity.Coord{X: x, Y: y, Z: z}))
				if x < entity.BoardSize-1 {
					row.WriteString(" ")
				}
			}
			if z < entity.BoardSize-1 {
				row.WriteString("      ")
			}
		}

		fmt.Fprintln(that.output, row.String())
	}

	fmt.Fprintln(that.output, "      x=0 1 2")
	fmt.Fprintln(that.output)
}

func (that *Server) cellView(game *entity.Game, cell entity.Coord) string {
	mark := game.Board.At(cell)
	if mark == entity.EmptyCell {
		return that.output.String(".").Faint().String()
	}

	style := that.output.String(mark)
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.output.Color("1"))
	case entity.PlayerO:
		style = style.Foreground(that.output.Color("4"))
	}

	if game.LastMove != nil && *game.LastMove == cell {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *Server) printOutcome(game *entity.Game) {
	switch game.Winner {
	case entity.PlayerX:
		fmt.Fprintln(that.output, that.output.String("You win!").Bold().Foreground(that.output.Color("2")))
	case entity.PlayerO:
		fmt.Fprintln(that.output, that.output.String("The bot wins.").Bold().Foreground(that.output.Color("1")))
	case entity.PlayerTie:
		fmt.Fprintln(that.output, that.output.String("Draw.").Bold())
	}
}
