// Command showboard renders a position from its grid string, lists the
// legal moves for the side to move, and optionally prints the move an
// AI of the given strength would pick.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/lk16/squares/internal/ai"
	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/game"
)

var (
	gameName     string
	grid         string
	sideName     string
	strengthName string
	seed         int64
)

func init() {
	pflag.StringVarP(&gameName, "game", "g", "reversi", "rule set: tic-tac-toe or reversi")
	pflag.StringVar(&grid, "grid", "", "position as a grid string, empty for the game's start")
	pflag.StringVarP(&sideName, "side", "m", "X", "side to move: X or O")
	pflag.StringVarP(&strengthName, "strength", "s", "", "also print the move this AI strength would pick")
	pflag.Int64Var(&seed, "seed", 1, "seed for the AI's tie breaks")
	pflag.Parse()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Cannot show board", "error", err)
		os.Exit(1)
	}
}

func run() error {
	rules, err := game.New(gameName)
	if err != nil {
		return err
	}

	var b *board.Board
	if grid == "" {
		b = rules.Start()
	} else {
		b, err = board.FromGrid(grid)
		if err != nil {
			return err
		}
		if err := rules.Validate(b); err != nil {
			return err
		}
	}

	mark, err := sideToMove(sideName)
	if err != nil {
		return err
	}

	fmt.Println(b)

	moves := rules.LegalMoves(b, mark)
	if len(moves) == 0 {
		fmt.Printf("Legal moves for %s: none\n", mark)
	} else {
		fmt.Printf("Legal moves for %s:", mark)
		for _, c := range moves {
			fmt.Printf(" %s", c)
		}
		fmt.Println()
	}
	fmt.Printf("Evaluation for %s: %d\n", mark, rules.Evaluate(b, mark))

	if strengthName == "" {
		return nil
	}

	strength, err := ai.ParseStrength(strengthName)
	if err != nil {
		return err
	}

	engine := ai.New(rules, strength, ai.WithSeed(seed))
	c, err := engine.Decide(b, mark)
	if err != nil {
		return err
	}
	fmt.Printf("%s would play %s\n", strength, c)

	return nil
}

func sideToMove(name string) (board.Mark, error) {
	switch name {
	case "X", "x":
		return board.X, nil
	case "O", "o":
		return board.O, nil
	default:
		return board.Empty, fmt.Errorf("side to move must be X or O, got %q", name)
	}
}
