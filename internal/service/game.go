package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/repository"
)

type GameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetActiveGame(ctx context.Context) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

// CreateGame starts a fresh game between the human (X, opens) and the
// bot (O) and stores it as the active session.
func (that *gameService) CreateGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID)
	game.Players = []*entity.Player{
		{ID: "human", Mark: entity.PlayerX, GameID: gameID},
		{ID: "bot", Mark: entity.PlayerO, GameID: gameID, Bot: true},
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetActiveGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
