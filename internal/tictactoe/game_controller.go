package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type botPlayer interface {
	ChooseCell(game *entity.Game) (int, error)
}

// GameController alternates turns on a game and hands the bot its turn in AI mode.
type GameController struct {
	bot botPlayer
}

func NewGameController(bot botPlayer) *GameController {
	return &GameController{
		bot: bot,
	}
}

// Start lets the bot open the round when it plays X.
func (that *GameController) Start(game *entity.Game) error {
	return that.playBotTurn(game)
}

// MakeTurn applies a move for mark and, in AI mode, the bot's reply.
func (that *GameController) MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if err := MakeTurn(game, mark, cell); err != nil {
		return err
	}

	return that.playBotTurn(game)
}

// NewRound clears the board, keeps the score and lets the bot open if it plays X.
func (that *GameController) NewRound(game *entity.Game) error {
	game.ResetRound()

	return that.playBotTurn(game)
}

func (that *GameController) playBotTurn(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	cell, err := that.bot.ChooseCell(game)
	if err != nil {
		return fmt.Errorf("bot failed to choose cell: %w", err)
	}

	if err = MakeTurn(game, game.Turn, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// MakeTurn places mark on cell if it is mark's turn.
func MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if !game.Board.ApplyMove(cell, mark) {
		return fmt.Errorf("invalid turn: %w", apperror.ErrCellOccupied)
	}

	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, cell int) error {
	if cell < 0 || cell >= entity.CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board.Snapshot()[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Mark) {
	game.UpdateGameState()

	if game.IsOngoing() {
		game.Turn = mark.Opponent()
	}
}
