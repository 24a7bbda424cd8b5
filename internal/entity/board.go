package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Mark identifies the player owning a cell. The zero value is an empty cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const CellCount = 9

// WinCombos are checked in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other mark. The empty mark has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Cells is a board snapshot. Cell i sits at row i/3, column i%3.
type Cells [CellCount]Mark

// Result is the terminal state of a board.
type Result string

const (
	NoResult Result = ""
	XWins    Result = Result(PlayerX)
	OWins    Result = Result(PlayerO)
	Draw     Result = "draw"
)

// Winner returns the winning mark, if any.
func (that Result) Winner() (Mark, bool) {
	switch that {
	case XWins:
		return PlayerX, true
	case OWins:
		return PlayerO, true
	default:
		return EmptyCell, false
	}
}

func (that Result) IsTerminal() bool {
	return that != NoResult
}

// Evaluate determines the result of any snapshot. The first completed line wins.
func Evaluate(cells Cells) Result {
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Result(a)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range cells {
		if cell == EmptyCell {
			return NoResult
		}
	}

	return Draw
}

// Board owns the canonical grid of a game. ApplyMove is its only mutator.
type Board struct {
	cells Cells
}

func NewBoard() *Board {
	return &Board{}
}

// BoardFrom builds a board holding a copy of cells.
func BoardFrom(cells Cells) *Board {
	return &Board{cells: cells}
}

func (that *Board) Initialize() {
	that.cells = Cells{}
}

// Snapshot returns a copy of the current cells.
func (that *Board) Snapshot() Cells {
	return that.cells
}

// ApplyMove places mark at index. It reports false and leaves the board
// untouched when the index is out of range or the cell is taken.
func (that *Board) ApplyMove(index int, mark Mark) bool {
	if index < 0 || index >= CellCount {
		return false
	}

	if that.cells[index] != EmptyCell {
		return false
	}

	that.cells[index] = mark

	return true
}

func (that *Board) Evaluate() Result {
	return Evaluate(that.cells)
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells Cells
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	for i, cell := range cells {
		if cell != EmptyCell && !cell.IsValid() {
			return fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidMark, cell, i)
		}
	}

	that.cells = cells

	return nil
}
