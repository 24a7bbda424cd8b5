package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoFactory func(t *testing.T) (context.Context, GameRepository)

func newStoredGame() *entity.Game {
	game := entity.NewGame("123", entity.AIMode, entity.HardDifficulty)
	game.Players = []*entity.Player{
		entity.NewPlayer("Alice", entity.PlayerX),
		entity.NewBotPlayer("Computer", entity.PlayerO),
	}
	game.Board = *entity.BoardFrom(entity.Cells{entity.PlayerX, entity.EmptyCell, entity.PlayerO})
	game.Score = entity.Score{X: 1, Draws: 2}

	return game
}

// runGameRepositoryContract checks the behaviour every GameRepository shares.
func runGameRepositoryContract(t *testing.T, newRepo repoFactory) {
	t.Helper()

	t.Run("CreateOrUpdate_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, newStoredGame())

		// Then: no error should be returned, and game is stored
		require.NoError(t, err)
	})

	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := newStoredGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
		assert.NotSame(t, game, retrievedGame)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := newStoredGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: a move is stored
		require.True(t, game.Board.ApplyMove(4, entity.PlayerX))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the latest board is returned
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.Board.Snapshot(), retrievedGame.Board.Snapshot())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := newStoredGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
