package rest

import "github.com/rocketscienceinc/tictactoe-ai/internal/entity"

type createGameRequest struct {
	Mode       string            `json:"mode"`
	Difficulty entity.Difficulty `json:"difficulty"`
	HumanMark  entity.Mark       `json:"human_mark"`
	PlayerX    string            `json:"player_x"`
	PlayerO    string            `json:"player_o"`
}

// turnRequest.Cell is a pointer so a missing cell is told apart from cell 0.
type turnRequest struct {
	Cell *int        `json:"cell"`
	Mark entity.Mark `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}
