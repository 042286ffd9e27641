package repository

import (
	"testing"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a fresh cube game
	game := entity.NewGame("123")
	game.Board.Set(entity.Coord{X: 1, Y: 1, Z: 1}, entity.PlayerX)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game with a move and a last-move marker
		game := entity.NewGame("123")
		require.NoError(t, game.MakeTurn(entity.PlayerX, entity.Coord{X: 0, Y: 2, Z: 1}))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with the existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches the saved one, board included
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Board, retrievedGame.Board)
		require.Equal(t, game.Turn, retrievedGame.Turn)
		require.Equal(t, game.LastMove, retrievedGame.LastMove)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_GetActive(t *testing.T) {
	t.Run("GetActive_ReturnsLastStoredGame", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: two games stored in sequence
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("first")))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("second")))

		// When: GetActive is called
		activeGame, err := gameRepo.GetActive(ctx)

		// Then: the most recently stored game is the active one
		require.NoError(t, err)
		assert.Equal(t, "second", activeGame.ID)
	})

	t.Run("GetActive_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: no game was ever stored
		_, err := gameRepo.GetActive(ctx)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a stored game
	game := entity.NewGame("123")
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// When: DeleteByID is called with the existing ID
	err := gameRepo.DeleteByID(ctx, game.ID)

	// Then: the game and the active pointer are gone
	require.NoError(t, err)

	_, err = gameRepo.GetByID(ctx, game.ID)
	require.ErrorIs(t, err, ErrGameNotFound)

	_, err = gameRepo.GetActive(ctx)
	require.ErrorIs(t, err, ErrGameNotFound)
}
