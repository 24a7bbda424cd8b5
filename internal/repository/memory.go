package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// memoryGame keeps encoded games so callers never share a *entity.Game.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string][]byte
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

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	gameJSON, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(gameJSON, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
