package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	PvPMode = "pvp"
	AIMode  = "ai"
)

type Difficulty string

const (
	EasyDifficulty       Difficulty = "easy"
	NormalDifficulty     Difficulty = "normal"
	HardDifficulty       Difficulty = "hard"
	UnbeatableDifficulty Difficulty = "unbeatable"
)

// Score is the running tally of finished rounds in a session.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

func (that *Score) Record(result Result) {
	switch result {
	case XWins:
		that.X++
	case OWins:
		that.O++
	case Draw:
		that.Draws++
	case NoResult:
	}
}

// Game is a local play session: one board, two players and the score of every round played so far.
type Game struct {
	ID         string     `json:"id"`
	Mode       string     `json:"mode"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"player_turn"`
	Status     string     `json:"status"`
	Result     Result     `json:"result"`
	Players    []*Player  `json:"players"`
	Score      Score      `json:"score"`
	Round      int        `json:"round"`
}

func NewGame(id, mode string, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Mode:       mode,
		Difficulty: difficulty,
		Turn:       PlayerX,
		Status:     StatusOngoing,
		Round:      1,
	}
}

// UpdateGameState re-evaluates the board and closes the round when it is over.
func (that *Game) UpdateGameState() {
	result := that.Board.Evaluate()
	if !result.IsTerminal() {
		that.Status = StatusOngoing
		return
	}

	that.Result = result
	that.Status = StatusFinished
	that.Turn = EmptyCell
	that.Score.Record(result)
}

// ResetRound clears the board for the next round. X always opens.
func (that *Game) ResetRound() {
	that.Board.Initialize()
	that.Turn = PlayerX
	that.Status = StatusOngoing
	that.Result = NoResult
	that.Round++
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Mode == AIMode
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// IsBotTurn reports whether the bot should move now.
func (that *Game) IsBotTurn() bool {
	if !that.IsWithBot() || !that.IsOngoing() {
		return false
	}

	bot := that.BotPlayer()

	return bot != nil && bot.Mark == that.Turn
}
