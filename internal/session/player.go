package session

import (
	"fmt"

	"github.com/lk16/squares/internal/ai"
	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/game"
)

// KindUser selects a human-driven player. Any ai strength name selects
// an AI player of that strength.
const KindUser = "user"

// Player is an actor bound to one mark that yields a coordinate when it
// is its turn.
type Player interface {
	// Mark returns the mark the player plays.
	Mark() board.Mark

	// Kind returns the player kind: KindUser or an ai strength name.
	Kind() string

	// Go returns the player's chosen coordinate. The session only calls
	// Go when at least one legal move exists for the player.
	Go() (board.Coordinate, error)
}

// Prompter connects a human player to the front end. The session core
// never reads input itself.
type Prompter interface {
	// PromptCoordinate asks for a coordinate for the given mark and
	// returns the raw text entered.
	PromptCoordinate(mark board.Mark) (string, error)

	// ReportInvalid tells the front end why the last input was
	// rejected, so it can explain before the next prompt.
	ReportInvalid(err error)
}

type humanPlayer struct {
	session  *Session
	mark     board.Mark
	prompter Prompter
}

func (p *humanPlayer) Mark() board.Mark {
	return p.mark
}

func (p *humanPlayer) Kind() string {
	return KindUser
}

// Go prompts until the input parses, lies on the board and is legal.
// Rejected input never mutates any state.
func (p *humanPlayer) Go() (board.Coordinate, error) {
	for {
		raw, err := p.prompter.PromptCoordinate(p.mark)
		if err != nil {
			return board.Coordinate{}, fmt.Errorf("reading input: %w", err)
		}

		c, err := board.ParseCoordinate(raw)
		if err != nil {
			p.prompter.ReportInvalid(err)
			continue
		}

		if _, err := p.session.board.Get(c); err != nil {
			p.prompter.ReportInvalid(err)
			continue
		}

		if !p.session.isLegal(c, p.mark) {
			p.prompter.ReportInvalid(fmt.Errorf("%w: cell %s", game.ErrIllegalMove, c))
			continue
		}

		return c, nil
	}
}

type aiPlayer struct {
	session *Session
	mark    board.Mark
	engine  *ai.Engine
}

func (p *aiPlayer) Mark() board.Mark {
	return p.mark
}

func (p *aiPlayer) Kind() string {
	return string(p.engine.Strength())
}

// Go asks the engine for a move on a snapshot of the live board.
func (p *aiPlayer) Go() (board.Coordinate, error) {
	return p.engine.Decide(p.session.board.Copy(), p.mark)
}
