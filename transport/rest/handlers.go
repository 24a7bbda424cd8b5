package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

var errCellRequired = errors.New("cell is required")

type gameUseCase interface {
	CreateGame(ctx context.Context, params usecase.NewGameParams) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Game, error)
	NewRound(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type GameHandlers interface {
	CreateGame(ctx *gin.Context)
	GetGame(ctx *gin.Context)
	MakeTurn(ctx *gin.Context)
	NewRound(ctx *gin.Context)
	DeleteGame(ctx *gin.Context)
}

type gameHandlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewGameHandlers(logger *slog.Logger, game gameUseCase) GameHandlers {
	return &gameHandlers{
		logger: logger,
		game:   game,
	}
}

func (that *gameHandlers) CreateGame(ctx *gin.Context) {
	var req createGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		that.abortWithError(ctx, "CreateGame", err)
		return
	}

	game, err := that.game.CreateGame(ctx.Request.Context(), usecase.NewGameParams{
		Mode:       req.Mode,
		Difficulty: req.Difficulty,
		HumanMark:  req.HumanMark,
		PlayerX:    req.PlayerX,
		PlayerO:    req.PlayerO,
	})
	if err != nil {
		that.abortWithError(ctx, "CreateGame", err)
		return
	}

	ctx.JSON(http.StatusCreated, game)
}

func (that *gameHandlers) GetGame(ctx *gin.Context) {
	game, err := that.game.GetGame(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.abortWithError(ctx, "GetGame", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) MakeTurn(ctx *gin.Context) {
	var req turnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		that.abortWithError(ctx, "MakeTurn", err)
		return
	}

	if req.Cell == nil {
		that.abortWithError(ctx, "MakeTurn", errCellRequired)
		return
	}

	game, err := that.game.MakeTurn(ctx.Request.Context(), ctx.Param("id"), req.Mark, *req.Cell)
	if err != nil {
		that.abortWithError(ctx, "MakeTurn", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) NewRound(ctx *gin.Context) {
	game, err := that.game.NewRound(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.abortWithError(ctx, "NewRound", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) DeleteGame(ctx *gin.Context) {
	if err := that.game.DeleteGame(ctx.Request.Context(), ctx.Param("id")); err != nil {
		that.abortWithError(ctx, "DeleteGame", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (that *gameHandlers) abortWithError(ctx *gin.Context, method string, err error) {
	status := statusFromError(err)

	log := that.logger.With("method", method)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		ctx.AbortWithStatusJSON(status, errorResponse{Error: http.StatusText(status)})

		return
	}

	log.Debug("request rejected", "status", status, "error", err)
	ctx.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

// statusFromError maps domain errors to HTTP statuses. Unknown errors are internal.
func statusFromError(err error) int {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, errCellRequired),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
