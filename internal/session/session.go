// Package session runs a single match between two players: it keeps
// the authoritative board, enforces turn order and pass rules, and
// records what happened.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lk16/squares/internal/ai"
	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/game"
)

// ErrGameOver is returned by Step once the session reached its
// terminal state.
var ErrGameOver = errors.New("the game is already over")

// State tracks the session lifecycle.
type State uint8

const (
	// StateSetup means no move has been played yet.
	StateSetup State = iota

	// StateInProgress means the game is under way.
	StateInProgress

	// StateTerminal means the game ended; the board no longer changes.
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateInProgress:
		return "in progress"
	case StateTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Event describes what a single Step did.
type Event struct {
	// Mark is the side whose turn it was.
	Mark board.Mark

	// Coordinate is the cell played. It is only meaningful when Placed
	// is set.
	Coordinate board.Coordinate

	// Placed is set when a mark was put on the board.
	Placed bool

	// Passed is set when the side had no legal move and the turn went
	// to the opponent.
	Passed bool

	// Finished is set when the game is over after this step.
	Finished bool
}

// Config describes the session to create.
type Config struct {
	// Game names the rule set, game.TicTacToeName or game.ReversiName.
	Game string

	// PlayerOne and PlayerTwo select who plays X and O respectively:
	// KindUser or an ai strength name.
	PlayerOne string
	PlayerTwo string

	// Start optionally holds a custom starting position as a grid
	// string. Empty selects the game's standard opening position.
	Start string

	// Seed makes AI play reproducible. Zero draws a seed from the
	// clock.
	Seed int64

	// Parallel lets AI engines evaluate root moves concurrently.
	Parallel bool

	// Prompter supplies human input. Required when a player is
	// KindUser.
	Prompter Prompter

	// Logger receives per-move logs. Nil means slog.Default().
	Logger *slog.Logger
}

// Session is a single match. It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	logger  *slog.Logger
	rules   game.Rules
	board   *board.Board
	players [2]Player
	current int
	state   State
	history []Event
	moves   int
}

// New builds a session from the configuration. Custom starting
// positions are validated against the game's rules first.
func New(cfg Config) (*Session, error) {
	rules, err := game.New(cfg.Game)
	if err != nil {
		return nil, err
	}

	var b *board.Board
	if cfg.Start != "" {
		b, err = board.FromGrid(cfg.Start)
		if err != nil {
			return nil, err
		}
		if err := rules.Validate(b); err != nil {
			return nil, err
		}
	} else {
		b = rules.Start()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Both engines share one source so a seed pins the whole game.
	// Moves are decided one at a time, so sharing is safe.
	rng := rand.New(rand.NewSource(seed))

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		id:    uuid.New(),
		rules: rules,
		board: b,
		state: StateSetup,
	}
	s.logger = logger.With("session_id", s.id, "game", rules.Name())

	marks := [2]board.Mark{board.X, board.O}
	kinds := [2]string{cfg.PlayerOne, cfg.PlayerTwo}
	for i, kind := range kinds {
		player, err := s.newPlayer(kind, marks[i], rng, cfg)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", marks[i], err)
		}
		s.players[i] = player
	}

	// On a custom position the side that placed fewer marks is the one
	// to move. Equal counts keep X to move, as in a fresh game.
	if b.Count(board.O) < b.Count(board.X) {
		s.current = 1
	}

	s.logger.Info("Session created",
		"player_x", s.players[0].Kind(),
		"player_o", s.players[1].Kind(),
		"seed", seed,
	)

	return s, nil
}

func (s *Session) newPlayer(kind string, mark board.Mark, rng *rand.Rand, cfg Config) (Player, error) {
	if kind == KindUser {
		if cfg.Prompter == nil {
			return nil, errors.New("a prompter is required for user players")
		}
		return &humanPlayer{session: s, mark: mark, prompter: cfg.Prompter}, nil
	}

	strength, err := ai.ParseStrength(kind)
	if err != nil {
		return nil, err
	}

	engine := ai.New(s.rules, strength, ai.WithRand(rng), ai.WithParallel(cfg.Parallel))
	return &aiPlayer{session: s, mark: mark, engine: engine}, nil
}

// Step advances the game by one turn: a placement, a forced pass, or
// the detection that the game is over. It returns what happened.
func (s *Session) Step() (Event, error) {
	if s.state == StateTerminal {
		return Event{}, ErrGameOver
	}
	if s.state == StateSetup {
		s.state = StateInProgress
	}

	player := s.players[s.current]
	mark := player.Mark()

	if len(s.rules.LegalMoves(s.board, mark)) == 0 {
		if s.rules.IsTerminal(s.board) {
			s.state = StateTerminal
			event := Event{Mark: mark, Finished: true}
			s.history = append(s.history, event)
			s.logGameOver()
			return event, nil
		}

		// The opponent must have a move, otherwise the position would
		// be terminal.
		s.current = 1 - s.current
		event := Event{Mark: mark, Passed: true}
		s.history = append(s.history, event)
		s.logger.Info("Turn passed", "mark", mark)
		return event, nil
	}

	c, err := player.Go()
	if err != nil {
		return Event{}, fmt.Errorf("player %s: %w", mark, err)
	}

	if err := s.rules.Apply(s.board, c, mark); err != nil {
		// Players only return vetted moves, so this is a defect.
		return Event{}, fmt.Errorf("applying move %s for %s: %w", c, mark, err)
	}

	s.moves++
	s.current = 1 - s.current

	event := Event{Mark: mark, Coordinate: c, Placed: true}
	if s.rules.IsTerminal(s.board) {
		s.state = StateTerminal
		event.Finished = true
	}
	s.history = append(s.history, event)

	s.logger.Info("Move played", "mark", mark, "coordinate", c, "move", s.moves)
	if event.Finished {
		s.logGameOver()
	}

	return event, nil
}

// Play advances the session until the game is over.
func (s *Session) Play() error {
	for s.state != StateTerminal {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) logGameOver() {
	x, o := s.Score()
	attrs := []any{"moves", s.moves, "score_x", x, "score_o", o}
	if winner, ok := s.Winner(); ok {
		attrs = append(attrs, "winner", winner)
	} else {
		attrs = append(attrs, "winner", "none")
	}
	s.logger.Info("Game over", attrs...)
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Board returns a copy of the current position.
func (s *Session) Board() *board.Board {
	return s.board.Copy()
}

// CurrentMark returns the mark whose turn it is.
func (s *Session) CurrentMark() board.Mark {
	return s.players[s.current].Mark()
}

// CurrentPlayer returns the player whose turn it is.
func (s *Session) CurrentPlayer() Player {
	return s.players[s.current]
}

// Winner reports the winning mark. The second value is false while the
// game is running and on a draw.
func (s *Session) Winner() (board.Mark, bool) {
	return s.rules.Winner(s.board)
}

// Score returns the current scores for X and O.
func (s *Session) Score() (x, o int) {
	return s.rules.Score(s.board, board.X), s.rules.Score(s.board, board.O)
}

// MoveCount returns the number of placements made so far. Passes do
// not count.
func (s *Session) MoveCount() int {
	return s.moves
}

// History returns a copy of everything that happened so far.
func (s *Session) History() []Event {
	return append([]Event(nil), s.history...)
}

func (s *Session) isLegal(c board.Coordinate, mark board.Mark) bool {
	for _, legal := range s.rules.LegalMoves(s.board, mark) {
		if legal == c {
			return true
		}
	}
	return false
}
