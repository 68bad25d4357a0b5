// Package game defines the rules of the supported board games: legal-move
// generation, the effect of placing a mark, scoring and terminal-state
// detection.
package game

import (
	"errors"
	"fmt"

	"github.com/lk16/squares/internal/board"
)

// Supported game identifiers.
const (
	TicTacToeName = "tic-tac-toe"
	ReversiName   = "reversi"
)

var (
	// ErrIllegalMove is returned when a move violates the rules of the
	// game: the cell is occupied, or the placement has no effect where
	// one is required.
	ErrIllegalMove = errors.New("move is not legal")

	// ErrInvalidBoard is returned when a board cannot occur in the game.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrUnknownGame is returned for unsupported game identifiers.
	ErrUnknownGame = errors.New("unknown game")
)

// Rules defines the variant-specific behavior of a two-player board game.
// Implementations are stateless with respect to any particular match: all
// methods derive their answers from the board they are given.
type Rules interface {
	// Name returns the game identifier.
	Name() string

	// BoardSize returns the side length of the game's board.
	BoardSize() int

	// Start returns a fresh board holding the game's starting position.
	Start() *board.Board

	// LegalMoves returns the coordinates where mark may be placed, in
	// board scan order. An empty result means the player has no legal
	// move.
	LegalMoves(b *board.Board, mark board.Mark) []board.Coordinate

	// Apply places mark at the coordinate and applies any secondary
	// effects, mutating b. It fails with ErrIllegalMove if the move is
	// not legal and board.ErrOutOfRange if the coordinate is off the
	// board, leaving b unchanged in both cases.
	Apply(b *board.Board, c board.Coordinate, mark board.Mark) error

	// IsTerminal reports whether the game is over: neither player has a
	// legal move left.
	IsTerminal(b *board.Board) bool

	// Winner returns the winning mark. The second return value is false
	// when there is no winner, which includes draws and boards where the
	// game is still in progress.
	Winner(b *board.Board) (board.Mark, bool)

	// Score returns the number of cells held by mark.
	Score(b *board.Board, mark board.Mark) int

	// Evaluate estimates how favorable the board is for mark. Decided
	// boards dominate undecided ones so that search never trades a
	// certain result for a heuristic promise.
	Evaluate(b *board.Board, mark board.Mark) int

	// Validate reports whether the board could occur in this game,
	// failing with ErrInvalidBoard otherwise. Used to vet custom
	// starting positions.
	Validate(b *board.Board) error
}

// New returns the rules for the given game identifier.
func New(name string) (Rules, error) {
	switch name {
	case TicTacToeName:
		return NewTicTacToe(), nil
	case ReversiName:
		return NewReversi(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGame, name)
}
