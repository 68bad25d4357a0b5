package ai

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/game"
)

// Search bounds per strength tier. Exact search solves the game to its
// end and is used whenever few enough empty cells remain; beyond that the
// search stops after a fixed number of placements and scores the cutoff
// boards heuristically.
const (
	mediumExactEmpties = 8
	hardExactEmpties   = 9
	hardMaxDepth       = 4
	nightmareMaxDepth  = 6
)

// ErrNoLegalMove is returned when Decide is invoked for a side that has
// no legal move. Detecting that situation beforehand is the caller's
// responsibility, so hitting this error indicates a bug in the caller.
var ErrNoLegalMove = errors.New("no legal move available")

// Engine selects moves for one side using minimax search.
type Engine struct {
	rules    game.Rules
	strength Strength
	rng      *rand.Rand
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for easy moves and tie-breaking.
// The source must not be shared across goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds a fresh random source, making the engine reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithParallel makes the engine search the root moves concurrently. The
// selected move is the same as for a serial search.
func WithParallel(parallel bool) Option {
	return func(e *Engine) {
		e.parallel = parallel
	}
}

// New creates an engine for the given rules and strength.
func New(rules game.Rules, strength Strength, opts ...Option) *Engine {
	e := &Engine{
		rules:    rules,
		strength: strength,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strength returns the engine's configured strength.
func (e *Engine) Strength() Strength {
	return e.strength
}

// Decide returns the coordinate judged best for mark. The given board is
// never modified: all exploration happens on copies.
func (e *Engine) Decide(b *board.Board, mark board.Mark) (board.Coordinate, error) {
	moves := e.rules.LegalMoves(b, mark)
	if len(moves) == 0 {
		return board.Coordinate{}, fmt.Errorf("%w for %s", ErrNoLegalMove, mark)
	}

	empties := b.Count(board.Empty)

	switch e.strength {
	case Easy:
		return moves[e.rng.Intn(len(moves))], nil

	case Medium:
		// One-ply greedy unless the endgame is small enough to solve.
		maxDepth := 1
		if empties <= mediumExactEmpties {
			maxDepth = empties
		}
		return e.searchBest(b, mark, moves, maxDepth, true), nil

	case Hard:
		maxDepth := hardMaxDepth
		if empties <= hardExactEmpties {
			maxDepth = empties
		}
		return e.searchBest(b, mark, moves, maxDepth, true), nil

	case Nightmare:
		maxDepth := nightmareMaxDepth
		if empties <= hardExactEmpties {
			maxDepth = empties
		}
		return e.searchBest(b, mark, moves, maxDepth, false), nil
	}

	return board.Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownStrength, e.strength)
}

// searchBest values every root move with a minimax search bounded by
// maxDepth placements and picks the best one.
func (e *Engine) searchBest(b *board.Board, mark board.Mark, moves []board.Coordinate, maxDepth int, randomTie bool) board.Coordinate {
	values := make([]int, len(moves))

	if e.parallel {
		group := new(errgroup.Group)
		group.SetLimit(runtime.GOMAXPROCS(0))
		for i, move := range moves {
			group.Go(func() error {
				values[i] = e.moveValue(b, move, mark, mark, 0, maxDepth)
				return nil
			})
		}
		// workers write disjoint slice entries and never fail
		_ = group.Wait()
	} else {
		for i, move := range moves {
			values[i] = e.moveValue(b, move, mark, mark, 0, maxDepth)
		}
	}

	best := values[0]
	for _, value := range values[1:] {
		if value > best {
			best = value
		}
	}

	if !randomTie {
		for i, value := range values {
			if value == best {
				return moves[i]
			}
		}
	}

	ties := make([]int, 0, len(values))
	for i, value := range values {
		if value == best {
			ties = append(ties, i)
		}
	}
	return moves[ties[e.rng.Intn(len(ties))]]
}

// moveValue applies a known-legal move on a copy of the board and scores
// the resulting position for root.
func (e *Engine) moveValue(b *board.Board, move board.Coordinate, toMove, root board.Mark, depth, maxDepth int) int {
	child := b.Copy()
	if err := e.rules.Apply(child, move, toMove); err != nil {
		panic(fmt.Sprintf("applying legal move %s for %s: %v", move, toMove, err))
	}
	return e.minimax(child, toMove.Opponent(), root, depth+1, maxDepth)
}

// minimax returns the value of the board for root with toMove to play.
// Root always maximizes and the opponent always minimizes, regardless of
// depth. depth counts placements: passing keeps the depth unchanged, so
// a bounded search always looks the configured number of real moves
// ahead.
func (e *Engine) minimax(b *board.Board, toMove, root board.Mark, depth, maxDepth int) int {
	if e.rules.IsTerminal(b) || depth >= maxDepth {
		return e.rules.Evaluate(b, root)
	}

	moves := e.rules.LegalMoves(b, toMove)
	if len(moves) == 0 {
		// toMove passes; the position is not terminal, so the opponent
		// has a move
		return e.minimax(b, toMove.Opponent(), root, depth, maxDepth)
	}

	maximize := toMove == root
	best := math.MaxInt
	if maximize {
		best = math.MinInt
	}

	for _, move := range moves {
		value := e.moveValue(b, move, toMove, root, depth, maxDepth)
		if maximize && value > best || !maximize && value < best {
			best = value
		}
	}

	return best
}
