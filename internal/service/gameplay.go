package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/repository"
)

var ErrNoHumanPlayer = errors.New("human player not found")

// GamePlayService is the surface the presentation layer talks to:
// resume or start a game, apply turns for either side, restart.
type GamePlayService interface {
	GetOrCreateGame(ctx context.Context) (*entity.Game, error)

	MakeHumanTurn(ctx context.Context, game *entity.Game, cell entity.Coord) error
	ComputeBotMove(game *entity.Game) (entity.Coord, error)
	ApplyBotTurn(ctx context.Context, game *entity.Game, cell entity.Coord) error

	Restart(ctx context.Context, game *entity.Game) error
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
		botService:  botService,
	}
}

// GetOrCreateGame resumes the stored in-flight game if one exists,
// otherwise starts a new one.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "GetOrCreateGame")

	game, err := that.gameService.GetActiveGame(ctx)
	if err == nil && game.IsOngoing() {
		log.Info("resuming active game", "game_id", game.ID)
		return game, nil
	}

	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	newGame, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("created new game", "game_id", newGame.ID)

	return newGame, nil
}

func (that *gamePlayService) MakeHumanTurn(ctx context.Context, game *entity.Game, cell entity.Coord) error {
	humanPlayer := game.HumanPlayer()
	if humanPlayer == nil {
		return ErrNoHumanPlayer
	}

	if err := game.MakeTurn(humanPlayer.Mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return that.persist(ctx, game)
}

func (that *gamePlayService) ComputeBotMove(game *entity.Game) (entity.Coord, error) {
	cell, err := that.botService.SelectMove(game)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	return cell, nil
}

func (that *gamePlayService) ApplyBotTurn(ctx context.Context, game *entity.Game, cell entity.Coord) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	if err := game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return that.persist(ctx, game)
}

func (that *gamePlayService) Restart(ctx context.Context, game *entity.Game) error {
	game.Reset()

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to store restarted game: %w", err)
	}

	return nil
}

// CleanupGame drops the stored session once a game is over. The caller
// keeps its in-memory copy for the final display.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame")

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted", "game_id", game.ID)
}

func (that *gamePlayService) persist(ctx context.Context, game *entity.Game) error {
	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
