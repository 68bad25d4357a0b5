package game

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/lk16/squares/internal/board"
)

const reversiSize = 8

// Evaluation weights. Decided boards are scaled so that even the smallest
// winning margin outranks any heuristic estimate, and corners are worth
// extra because they can never be flipped back.
const (
	reversiTerminalWeight = 1000
	reversiCornerWeight   = 10
)

// maxCachedPositions bounds the legal-move cache. The cache is dropped
// wholesale when the bound is reached.
const maxCachedPositions = 1 << 16

var reversiStartGrid = strings.Repeat(" ", 27) + "XO" + strings.Repeat(" ", 6) + "OX" + strings.Repeat(" ", 27)

// Reversi implements the rules of 8x8 Reversi (Othello): a placement must
// bracket at least one contiguous run of opponent marks, and every
// bracketed run is flipped to the mover's mark.
type Reversi struct {
	// moves caches legal-move computations keyed by grid and mark. Move
	// generation scans eight directions per empty cell and the search
	// engine revisits the same positions constantly, so this pays off
	// quickly. Cached slices are shared and must not be modified.
	moves *xsync.MapOf[string, []board.Coordinate]
}

var _ Rules = (*Reversi)(nil)

// NewReversi creates the Reversi rules with an empty legal-move cache.
func NewReversi() *Reversi {
	return &Reversi{
		moves: xsync.NewMapOf[string, []board.Coordinate](),
	}
}

// Name implements Rules.
func (r *Reversi) Name() string {
	return ReversiName
}

// BoardSize implements Rules.
func (r *Reversi) BoardSize() int {
	return reversiSize
}

// Start returns a board with the four center cells preset in the standard
// alternating pattern.
func (r *Reversi) Start() *board.Board {
	b, err := board.FromGrid(reversiStartGrid)
	if err != nil {
		panic(err)
	}
	return b
}

// LegalMoves returns all empty cells where placing mark flips at least
// one opponent cell. The result is cached and must not be modified.
func (r *Reversi) LegalMoves(b *board.Board, mark board.Mark) []board.Coordinate {
	key := b.Grid() + mark.String()
	if legal, ok := r.moves.Load(key); ok {
		return legal
	}

	var legal []board.Coordinate
	for _, c := range b.CellsWith(board.Empty) {
		if r.flipsAny(b, c, mark) {
			legal = append(legal, c)
		}
	}

	if r.moves.Size() >= maxCachedPositions {
		r.moves.Clear()
	}
	r.moves.Store(key, legal)

	return legal
}

// Apply places mark at the coordinate and flips every bracketed run of
// opponent marks.
func (r *Reversi) Apply(b *board.Board, c board.Coordinate, mark board.Mark) error {
	current, err := b.Get(c)
	if err != nil {
		return err
	}
	if current != board.Empty {
		return fmt.Errorf("%w: cell %s is occupied", ErrIllegalMove, c)
	}

	flipped := r.flipped(b, c, mark)
	if len(flipped) == 0 {
		return fmt.Errorf("%w: %s does not flip any opponent cell", ErrIllegalMove, c)
	}

	if err := b.Set(c, mark); err != nil {
		return err
	}
	for _, f := range flipped {
		if err := b.Set(f, mark); err != nil {
			return err
		}
	}
	return nil
}

// IsTerminal reports whether neither player has a legal move left.
func (r *Reversi) IsTerminal(b *board.Board) bool {
	return len(r.LegalMoves(b, board.X)) == 0 && len(r.LegalMoves(b, board.O)) == 0
}

// Winner returns the mark holding strictly more cells once the game is
// over. A tie or an undecided game has no winner.
func (r *Reversi) Winner(b *board.Board) (board.Mark, bool) {
	if !r.IsTerminal(b) {
		return board.Empty, false
	}

	x := b.Count(board.X)
	o := b.Count(board.O)
	switch {
	case x > o:
		return board.X, true
	case o > x:
		return board.O, true
	}
	return board.Empty, false
}

// Score implements Rules.
func (r *Reversi) Score(b *board.Board, mark board.Mark) int {
	return b.Count(mark)
}

// Evaluate returns the scaled final margin for decided boards and a
// corner-weighted cell margin otherwise.
func (r *Reversi) Evaluate(b *board.Board, mark board.Mark) int {
	margin := b.Count(mark) - b.Count(mark.Opponent())
	if r.IsTerminal(b) {
		return margin * reversiTerminalWeight
	}
	return margin + reversiCornerWeight*r.cornerMargin(b, mark)
}

// Validate implements Rules.
func (r *Reversi) Validate(b *board.Board) error {
	if b.Size() != reversiSize {
		return fmt.Errorf("%w: reversi needs a %dx%d board, got %dx%d",
			ErrInvalidBoard, reversiSize, reversiSize, b.Size(), b.Size())
	}
	return nil
}

// cornerMargin returns the number of corners held by mark minus those
// held by the opponent.
func (r *Reversi) cornerMargin(b *board.Board, mark board.Mark) int {
	size := b.Size()
	corners := [4]board.Coordinate{
		{X: 1, Y: 1},
		{X: 1, Y: size},
		{X: size, Y: 1},
		{X: size, Y: size},
	}

	margin := 0
	for _, corner := range corners {
		held, err := b.Get(corner)
		if err != nil {
			panic(err)
		}
		switch held {
		case mark:
			margin++
		case mark.Opponent():
			margin--
		}
	}
	return margin
}

// flipsAny reports whether placing mark at c would flip at least one
// opponent cell. This is the Reversi legality predicate.
func (r *Reversi) flipsAny(b *board.Board, c board.Coordinate, mark board.Mark) bool {
	opponent := mark.Opponent()
	for _, direction := range board.Directions {
		line := b.Line(c, direction)
		run := opponentRun(line, opponent)
		if run > 0 && run < len(line) && line[run].Mark == mark {
			return true
		}
	}
	return false
}

// flipped returns the coordinates of every opponent cell flipped by
// placing mark at c: in each direction, the contiguous run of opponent
// marks terminated by one of the mover's own marks.
func (r *Reversi) flipped(b *board.Board, c board.Coordinate, mark board.Mark) []board.Coordinate {
	opponent := mark.Opponent()
	var flipped []board.Coordinate
	for _, direction := range board.Directions {
		line := b.Line(c, direction)
		run := opponentRun(line, opponent)
		if run > 0 && run < len(line) && line[run].Mark == mark {
			for _, cell := range line[:run] {
				flipped = append(flipped, cell.Coordinate)
			}
		}
	}
	return flipped
}

// opponentRun returns the length of the leading run of opponent marks on
// the line.
func opponentRun(line []board.Cell, opponent board.Mark) int {
	run := 0
	for run < len(line) && line[run].Mark == opponent {
		run++
	}
	return run
}
