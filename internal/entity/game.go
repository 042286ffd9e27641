package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var ErrInvalidCell = errors.New("cell coordinate out of range")

type Game struct {
	ID       string    `json:"id"`
	Board    Board     `json:"board"`
	Winner   string    `json:"winner,omitempty"`
	Status   string    `json:"status"`
	Turn     string    `json:"player_turn"`
	LastMove *Coord    `json:"last_move,omitempty"`
	Players  []*Player `json:"players,omitempty"`
}

// NewGame starts a fresh game. The human plays X and moves first.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// DetermineGameResult returns the winning mark, PlayerTie when the
// board is full with no winner, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() string {
	if winner := that.Board.WinningMark(); winner != EmptyCell {
		return winner
	}

	// the game will continue until all the cells are full
	if !that.Board.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continues
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell Coord) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !cell.InBounds() {
		return fmt.Errorf("%w: cell (%d,%d,%d)", ErrInvalidCell, cell.X, cell.Y, cell.Z)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.At(cell) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board.Set(cell, playerMark)
	that.LastMove = &Coord{cell.X, cell.Y, cell.Z}
	that.Turn = OpponentMark(playerMark)

	that.UpdateGameState()

	return nil
}

// Reset wipes the board for a rematch, keeping the players. The human
// always opens the next game too.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Winner = EmptyCell
	that.Status = StatusOngoing
	that.Turn = PlayerX
	that.LastMove = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}

func OpponentMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
