package ai

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// OptimalMove returns the first move with the best minimax score for the AI.
func (that *Engine) OptimalMove(cells entity.Cells) int {
	bestScore := math.MinInt
	bestMove := NoMove

	for _, move := range AvailableMoves(cells) {
		child := cells
		child[move] = that.aiMark

		if score := that.Minimax(child, false); score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove
}

// Minimax scores cells by exhaustive search. maximizing means the AI moves next.
// Scores ignore depth: a win in one move is worth the same as a win in five.
func (that *Engine) Minimax(cells entity.Cells, maximizing bool) int {
	result := entity.Evaluate(cells)
	if winner, ok := result.Winner(); ok {
		if winner == that.aiMark {
			return winScore
		}
		if winner == that.opponentMark {
			return lossScore
		}
	}

	if result == entity.Draw {
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for _, move := range AvailableMoves(cells) {
			child := cells
			child[move] = that.aiMark
			best = max(best, that.Minimax(child, false))
		}

		return best
	}

	best := math.MaxInt
	for _, move := range AvailableMoves(cells) {
		child := cells
		child[move] = that.opponentMark
		best = min(best, that.Minimax(child, true))
	}

	return best
}
