package service

import (
	"errors"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/engine"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	SelectMove(game *entity.Game) (entity.Coord, error)
}

type botService struct {
	engine *engine.Engine
}

func NewBotService(eng *engine.Engine) BotService {
	return &botService{
		engine: eng,
	}
}

// SelectMove picks the bot's move for the current position without
// touching the game state; the caller decides when to apply it.
func (that *botService) SelectMove(game *entity.Game) (entity.Coord, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return entity.Coord{}, ErrBotNotFound
	}

	cell, ok := that.engine.SelectMove(game.Board, botPlayer.Mark)
	if !ok {
		return entity.Coord{}, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}
