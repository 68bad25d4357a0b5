// Command play runs games on the terminal: a menu to pick the game,
// then a match between the configured players.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/config"
	"github.com/lk16/squares/internal/game"
	"github.com/lk16/squares/internal/session"
)

const menu = `Please choose the game:
	1 - Tic-Tac-Toe;
	2 - Reversi.
Type "exit" to exit the program.

Input command: `

var supportedGames = map[string]string{
	"1": game.TicTacToeName,
	"2": game.ReversiName,
}

var (
	configPath string
	gameName   string
	playerOne  string
	playerTwo  string
	seed       int64
	parallel   bool
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	pflag.StringVarP(&gameName, "game", "g", "", "game to start right away: tic-tac-toe or reversi")
	pflag.StringVar(&playerOne, "player-one", "", "player for X: user, easy, medium, hard or nightmare")
	pflag.StringVar(&playerTwo, "player-two", "", "player for O: user, easy, medium, hard or nightmare")
	pflag.Int64Var(&seed, "seed", 0, "seed for reproducible AI play, 0 picks one from the clock")
	pflag.BoolVar(&parallel, "parallel", false, "let AI engines evaluate root moves concurrently")
	pflag.Parse()
}

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Cannot load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if err := config.SetLogLevel(cfg.LogLevel); err != nil {
		slog.Error("Invalid log level", "level", cfg.LogLevel)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Game aborted", "error", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cfg *config.Config) {
	flags := pflag.CommandLine
	if flags.Changed("game") {
		cfg.Game = gameName
	}
	if flags.Changed("player-one") {
		cfg.PlayerOne = playerOne
	}
	if flags.Changed("player-two") {
		cfg.PlayerTwo = playerTwo
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}
}

func run(cfg *config.Config) error {
	input := bufio.NewScanner(os.Stdin)

	// An explicit --game skips the menu once.
	choice := ""
	if pflag.CommandLine.Changed("game") {
		choice = choiceFor(cfg.Game)
		if choice == "" {
			return fmt.Errorf("%w: %q", game.ErrUnknownGame, cfg.Game)
		}
	}

	for choice != "exit" {
		if name, ok := supportedGames[choice]; ok {
			if err := play(cfg, name, input); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}

		fmt.Print(menu)
		if !input.Scan() {
			return input.Err()
		}
		choice = strings.TrimSpace(input.Text())
	}

	return nil
}

func choiceFor(name string) string {
	for choice, gameName := range supportedGames {
		if name == choice || name == gameName {
			return choice
		}
	}
	return ""
}

// play runs a single match and reports its result on stdout.
func play(cfg *config.Config, name string, input *bufio.Scanner) error {
	prompter := &stdinPrompter{input: input}

	s, err := session.New(session.Config{
		Game:      name,
		PlayerOne: cfg.PlayerOne,
		PlayerTwo: cfg.PlayerTwo,
		Seed:      cfg.Seed,
		Parallel:  cfg.Parallel,
		Prompter:  prompter,
	})
	if err != nil {
		return err
	}
	prompter.size = s.Board().Size()

	fmt.Println(s.Board())

	for s.State() != session.StateTerminal {
		event, err := s.Step()
		if err != nil {
			return err
		}

		if event.Placed {
			fmt.Println(s.Board())
		}
		if event.Passed {
			fmt.Printf("The player [%s] has no steps available!\n", event.Mark)
		}
	}

	if winner, ok := s.Winner(); ok {
		fmt.Printf("%s wins\n", winner)
	} else {
		fmt.Println("Draw")
	}

	return nil
}

// stdinPrompter reads human moves from stdin and prints why rejected
// input was rejected.
type stdinPrompter struct {
	input *bufio.Scanner
	size  int
}

func (p *stdinPrompter) PromptCoordinate(mark board.Mark) (string, error) {
	fmt.Printf("Enter the coordinate [%s]: ", mark)

	if !p.input.Scan() {
		if err := p.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return p.input.Text(), nil
}

func (p *stdinPrompter) ReportInvalid(err error) {
	switch {
	case errors.Is(err, board.ErrNotTwoNumbers):
		fmt.Println("You should enter two numbers!")
	case errors.Is(err, board.ErrOutOfRange):
		fmt.Printf("Coordinates should be from 1 to %d!\n", p.size)
	case errors.Is(err, game.ErrIllegalMove):
		fmt.Println("You cannot go here!")
	default:
		fmt.Println(err)
	}
}
