package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	runGameRepositoryContract(t, func(_ *testing.T) (context.Context, GameRepository) {
		return context.Background(), NewMemoryGameRepository()
	})
}

func TestMemoryGameRepository_Isolation(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewMemoryGameRepository()

	// Given: a stored game
	game := newStoredGame()
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// When: the caller keeps changing its copy without saving
	require.True(t, game.Board.ApplyMove(8, entity.PlayerX))

	// Then: the stored game is unaffected
	retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EmptyCell, retrievedGame.Board.Snapshot()[8])
}

func TestMemoryGameRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewMemoryGameRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()

			game := newStoredGame()
			game.ID = fmt.Sprintf("game-%d", i)
			assert.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

			_, err := gameRepo.GetByID(ctx, game.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		require.NoError(t, gameRepo.DeleteByID(ctx, fmt.Sprintf("game-%d", i)))
	}
}
