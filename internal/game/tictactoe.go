package game

import (
	"fmt"

	"github.com/lk16/squares/internal/board"
)

const ticTacToeSize = 3

// TicTacToe implements the rules of 3x3 Tic-Tac-Toe: marks are placed on
// empty cells and the first player to complete a row, column or diagonal
// wins.
type TicTacToe struct{}

var _ Rules = (*TicTacToe)(nil)

// NewTicTacToe creates the Tic-Tac-Toe rules.
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{}
}

// Name implements Rules.
func (t *TicTacToe) Name() string {
	return TicTacToeName
}

// BoardSize implements Rules.
func (t *TicTacToe) BoardSize() int {
	return ticTacToeSize
}

// Start returns an empty 3x3 board.
func (t *TicTacToe) Start() *board.Board {
	return board.MustNew(ticTacToeSize)
}

// LegalMoves returns all empty cells, or nothing once a player has
// completed a line.
func (t *TicTacToe) LegalMoves(b *board.Board, mark board.Mark) []board.Coordinate {
	if _, won := t.Winner(b); won {
		return nil
	}
	return b.CellsWith(board.Empty)
}

// Apply places mark on an empty cell. There are no secondary effects.
func (t *TicTacToe) Apply(b *board.Board, c board.Coordinate, mark board.Mark) error {
	current, err := b.Get(c)
	if err != nil {
		return err
	}
	if current != board.Empty {
		return fmt.Errorf("%w: cell %s is occupied", ErrIllegalMove, c)
	}
	if _, won := t.Winner(b); won {
		return fmt.Errorf("%w: the game is already decided", ErrIllegalMove)
	}
	return b.Set(c, mark)
}

// IsTerminal reports whether a line is complete or the board is full.
func (t *TicTacToe) IsTerminal(b *board.Board) bool {
	if _, won := t.Winner(b); won {
		return true
	}
	return b.Count(board.Empty) == 0
}

// Winner returns the mark that completed a line, if any.
func (t *TicTacToe) Winner(b *board.Board) (board.Mark, bool) {
	if t.hasLine(b, board.X) {
		return board.X, true
	}
	if t.hasLine(b, board.O) {
		return board.O, true
	}
	return board.Empty, false
}

// Score implements Rules.
func (t *TicTacToe) Score(b *board.Board, mark board.Mark) int {
	return b.Count(mark)
}

// Evaluate returns +1 for a won board, -1 for a lost one and 0 otherwise.
func (t *TicTacToe) Evaluate(b *board.Board, mark board.Mark) int {
	winner, won := t.Winner(b)
	if !won {
		return 0
	}
	if winner == mark {
		return 1
	}
	return -1
}

// Validate rejects boards that cannot occur under alternating play.
func (t *TicTacToe) Validate(b *board.Board) error {
	if b.Size() != ticTacToeSize {
		return fmt.Errorf("%w: tic-tac-toe needs a %dx%d board, got %dx%d",
			ErrInvalidBoard, ticTacToeSize, ticTacToeSize, b.Size(), b.Size())
	}

	diff := b.Count(board.X) - b.Count(board.O)
	if diff < -1 || diff > 1 {
		return fmt.Errorf("%w: mark counts differ by more than one", ErrInvalidBoard)
	}

	if t.hasLine(b, board.X) && t.hasLine(b, board.O) {
		return fmt.Errorf("%w: both players have a completed line", ErrInvalidBoard)
	}

	return nil
}

// hasLine reports whether mark holds a complete row, column or diagonal.
func (t *TicTacToe) hasLine(b *board.Board, mark board.Mark) bool {
	sides := b.Rows()
	sides = append(sides, b.Columns()...)
	sides = append(sides, b.Diagonals()...)

	for _, side := range sides {
		complete := true
		for _, cell := range side {
			if cell.Mark != mark {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
