package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	ChooseCell(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
	opts   []ai.Option
}

// NewBotService returns a bot that builds an engine from the bot mark on every move. opts apply to each engine.
func NewBotService(logger *slog.Logger, opts ...ai.Option) BotService {
	return &botService{
		logger: logger,
		opts:   opts,
	}
}

func (that *botService) ChooseCell(game *entity.Game) (int, error) {
	log := that.logger.With("method", "ChooseCell", "gameID", game.ID)

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ai.NoMove, ErrBotNotFound
	}

	engine, err := ai.NewEngine(botPlayer.Mark, botPlayer.Mark.Opponent(), that.opts...)
	if err != nil {
		return ai.NoMove, fmt.Errorf("failed to create engine: %w", err)
	}

	cell := engine.SelectMove(game.Board.Snapshot(), game.Difficulty)
	if cell == ai.NoMove {
		return ai.NoMove, ErrNoAvailableMoves
	}

	log.Debug("bot chose cell", "cell", cell, "mark", botPlayer.Mark, "difficulty", game.Difficulty)

	return cell, nil
}
