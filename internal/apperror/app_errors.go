package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInvalidMark       = errors.New("invalid player mark")
)
