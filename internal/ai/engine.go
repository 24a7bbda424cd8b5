// Package ai picks moves for a computer player on a tic-tac-toe board.
//
// An Engine only ever reads the snapshots it is given. Every candidate move
// is tried on a copy, so the caller's board is never touched.
package ai

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// NoMove is returned when the board has no empty cell.
const NoMove = -1

// optimalProbability is the share of hard moves that come from the full search.
const optimalProbability = 0.8

var ErrInvalidMarks = errors.New("invalid ai marks")

type strategy func(engine *Engine, cells entity.Cells) int

var strategies = map[entity.Difficulty]strategy{
	entity.EasyDifficulty:       (*Engine).RandomMove,
	entity.NormalDifficulty:     (*Engine).BlockingMove,
	entity.HardDifficulty:       (*Engine).ProbabilisticOptimalMove,
	entity.UnbeatableDifficulty: (*Engine).OptimalMove,
}

// Engine selects moves for aiMark against opponentMark.
type Engine struct {
	aiMark       entity.Mark
	opponentMark entity.Mark

	rnd *rand.Rand
}

type Option func(engine *Engine)

// WithRand makes the engine draw from rnd instead of the global source.
// A *rand.Rand is not safe for concurrent use, so do not share it between goroutines.
func WithRand(rnd *rand.Rand) Option {
	return func(engine *Engine) {
		engine.rnd = rnd
	}
}

func NewEngine(aiMark, opponentMark entity.Mark, opts ...Option) (*Engine, error) {
	if !aiMark.IsValid() || !opponentMark.IsValid() || aiMark == opponentMark {
		return nil, fmt.Errorf("%w: ai %q, opponent %q", ErrInvalidMarks, aiMark, opponentMark)
	}

	engine := &Engine{
		aiMark:       aiMark,
		opponentMark: opponentMark,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

func (that *Engine) AIMark() entity.Mark {
	return that.aiMark
}

func (that *Engine) OpponentMark() entity.Mark {
	return that.opponentMark
}

// SelectMove returns the cell chosen for difficulty, or NoMove.
// Unknown difficulties play like easy.
func (that *Engine) SelectMove(cells entity.Cells, difficulty entity.Difficulty) int {
	pick, ok := strategies[difficulty]
	if !ok {
		pick = (*Engine).RandomMove
	}

	return pick(that, cells)
}

// AvailableMoves lists the empty cells in ascending order.
func AvailableMoves(cells entity.Cells) []int {
	moves := make([]int, 0, len(cells))
	for i, cell := range cells {
		if cell == entity.EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Engine) RandomMove(cells entity.Cells) int {
	moves := AvailableMoves(cells)
	if len(moves) == 0 {
		return NoMove
	}

	return moves[that.randIntn(len(moves))]
}

// BlockingMove takes an immediate win, else blocks the opponent's immediate win,
// else plays randomly. Ties go to the lowest index.
func (that *Engine) BlockingMove(cells entity.Cells) int {
	moves := AvailableMoves(cells)

	for _, move := range moves {
		if winsWith(cells, move, that.aiMark) {
			return move
		}
	}

	for _, move := range moves {
		if winsWith(cells, move, that.opponentMark) {
			return move
		}
	}

	return that.RandomMove(cells)
}

func (that *Engine) ProbabilisticOptimalMove(cells entity.Cells) int {
	if that.randFloat() < optimalProbability {
		return that.OptimalMove(cells)
	}

	return that.BlockingMove(cells)
}

// winsWith reports whether mark wins by playing move. cells is a copy.
func winsWith(cells entity.Cells, move int, mark entity.Mark) bool {
	cells[move] = mark

	winner, ok := entity.Evaluate(cells).Winner()

	return ok && winner == mark
}

func (that *Engine) randIntn(n int) int {
	if that.rnd != nil {
		return that.rnd.Intn(n)
	}

	return rand.Intn(n) //nolint: gosec // game moves need no crypto
}

func (that *Engine) randFloat() float64 {
	if that.rnd != nil {
		return that.rnd.Float64()
	}

	return rand.Float64() //nolint: gosec // game moves need no crypto
}
