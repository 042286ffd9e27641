package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

// memoryGame is the storage-disabled fallback: same contract as the
// Redis repository, backed by a map. Games are stored as JSON so the
// repository hands out copies, not aliases of the caller's game.
type memoryGame struct {
	mu       sync.RWMutex
	games    map[string][]byte
	activeID string
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = gameJSON
	that.activeID = game.ID

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	gameJSON, exists := that.games[id]
	that.mu.RUnlock()

	if !exists {
		return &entity.Game{}, ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(gameJSON, &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) GetActive(ctx context.Context) (*entity.Game, error) {
	that.mu.RLock()
	id := that.activeID
	that.mu.RUnlock()

	if id == "" {
		return &entity.Game{}, ErrGameNotFound
	}

	return that.GetByID(ctx, id)
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.games, id)
	if that.activeID == id {
		that.activeID = ""
	}

	return nil
}
