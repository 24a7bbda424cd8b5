package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBotService() BotService {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewBotService(logger, ai.WithRand(rand.New(rand.NewSource(1)))) //nolint: gosec // tests
}

func newBotGame(difficulty entity.Difficulty, botMark entity.Mark, cells entity.Cells) *entity.Game {
	game := entity.NewGame("g1", entity.AIMode, difficulty)
	game.Board = *entity.BoardFrom(cells)
	game.Players = []*entity.Player{
		entity.NewPlayer("Alice", botMark.Opponent()),
		entity.NewBotPlayer("Computer", botMark),
	}

	return game
}

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Blocks on normal difficulty", func(t *testing.T) {
		// Given: X threatens the top row and the bot plays O
		game := newBotGame(entity.NormalDifficulty, entity.PlayerO, entity.Cells{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		})

		// When: the bot chooses a cell
		cell, err := newTestBotService().ChooseCell(game)

		// Then: it blocks at 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Reasons with its own mark", func(t *testing.T) {
		// Given: the same board but the bot plays X
		game := newBotGame(entity.UnbeatableDifficulty, entity.PlayerX, entity.Cells{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		})

		// When: the bot chooses a cell
		cell, err := newTestBotService().ChooseCell(game)

		// Then: it completes its row
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Does not change the board", func(t *testing.T) {
		game := newBotGame(entity.UnbeatableDifficulty, entity.PlayerO, entity.Cells{4: entity.PlayerX})
		before := game.Board.Snapshot()

		_, err := newTestBotService().ChooseCell(game)

		require.NoError(t, err)
		assert.Equal(t, before, game.Board.Snapshot())
	})

	t.Run("Returns ErrBotNotFound without a bot player", func(t *testing.T) {
		game := entity.NewGame("g1", entity.PvPMode, "")
		game.Players = []*entity.Player{
			entity.NewPlayer("Alice", entity.PlayerX),
			entity.NewPlayer("Bob", entity.PlayerO),
		}

		_, err := newTestBotService().ChooseCell(game)

		require.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		x, o := entity.PlayerX, entity.PlayerO
		game := newBotGame(entity.EasyDifficulty, o, entity.Cells{x, o, x, o, x, o, o, x, o})

		_, err := newTestBotService().ChooseCell(game)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Returns engine error for an invalid bot mark", func(t *testing.T) {
		game := newBotGame(entity.EasyDifficulty, entity.EmptyCell, entity.Cells{})

		_, err := newTestBotService().ChooseCell(game)

		require.ErrorIs(t, err, ai.ErrInvalidMarks)
	})
}
