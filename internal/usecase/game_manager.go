package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/pkg"
)

const botName = "Computer"

var defaultPlayerNames = map[entity.Mark]string{
	entity.PlayerX: "Player X",
	entity.PlayerO: "Player O",
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	Start(game *entity.Game) error
	MakeTurn(game *entity.Game, mark entity.Mark, cell int) error
	NewRound(game *entity.Game) error
}

// NewGameParams describes a session to create. Empty names and marks fall back to defaults.
type NewGameParams struct {
	Mode       string
	Difficulty entity.Difficulty
	HumanMark  entity.Mark
	PlayerX    string
	PlayerO    string
}

type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	controller gameController

	defaultDifficulty entity.Difficulty
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController, defaultDifficulty entity.Difficulty) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo:   gameRepo,
		controller: controller,

		defaultDifficulty: defaultDifficulty,
	}
}

// CreateGame starts a new session. In AI mode the bot opens when the human plays O.
func (that *GameManager) CreateGame(ctx context.Context, params NewGameParams) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	game, err := that.newGame(params)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare game: %w", err)
	}

	if err = that.controller.Start(game); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game created", "game_id", game.ID, "mode", game.Mode, "difficulty", game.Difficulty)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeTurn plays cell for mark. In AI mode an empty mark means the human player.
func (that *GameManager) MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn")

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if mark == entity.EmptyCell && game.IsWithBot() {
		mark = humanMark(game)
	}

	if !mark.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if err = that.controller.MakeTurn(game, mark, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		log.Info("round finished", "game_id", game.ID, "round", game.Round, "result", game.Result)
	}

	return game, nil
}

// NewRound clears the board of a session and keeps its score.
func (that *GameManager) NewRound(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = that.controller.NewRound(game); err != nil {
		return nil, fmt.Errorf("failed to start new round: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteGame")

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) newGame(params NewGameParams) (*entity.Game, error) {
	names := map[entity.Mark]string{
		entity.PlayerX: params.PlayerX,
		entity.PlayerO: params.PlayerO,
	}

	switch params.Mode {
	case entity.PvPMode:
		game := entity.NewGame(pkg.GenerateGameID(), entity.PvPMode, "")
		game.Players = []*entity.Player{
			entity.NewPlayer(playerName(names, entity.PlayerX, defaultPlayerNames[entity.PlayerX]), entity.PlayerX),
			entity.NewPlayer(playerName(names, entity.PlayerO, defaultPlayerNames[entity.PlayerO]), entity.PlayerO),
		}

		return game, nil
	case entity.AIMode:
		human := params.HumanMark
		if human == entity.EmptyCell {
			human = entity.PlayerX
		}

		if !human.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, human)
		}

		difficulty := params.Difficulty
		if difficulty == "" {
			difficulty = that.defaultDifficulty
		}

		game := entity.NewGame(pkg.GenerateGameID(), entity.AIMode, difficulty)
		game.Players = []*entity.Player{
			entity.NewPlayer(playerName(names, human, defaultPlayerNames[human]), human),
			entity.NewBotPlayer(playerName(names, human.Opponent(), botName), human.Opponent()),
		}

		return game, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, params.Mode)
	}
}

func playerName(names map[entity.Mark]string, mark entity.Mark, fallback string) string {
	if name := names[mark]; name != "" {
		return name
	}

	return fallback
}

func humanMark(game *entity.Game) entity.Mark {
	for _, player := range game.Players {
		if !player.IsBot() {
			return player.Mark
		}
	}

	return entity.EmptyCell
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
