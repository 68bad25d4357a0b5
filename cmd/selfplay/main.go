// Command selfplay runs batches of AI-versus-AI games and tallies the
// results. Useful for comparing strengths and for catching rule
// regressions at volume.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/lk16/squares/internal/board"
	"github.com/lk16/squares/internal/config"
	"github.com/lk16/squares/internal/session"
)

var (
	logLevel    string
	gameName    string
	playerOne   string
	playerTwo   string
	games       int
	seed        int64
	concurrency int
	parallel    bool
)

func init() {
	pflag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pflag.StringVarP(&gameName, "game", "g", "reversi", "game to play: tic-tac-toe or reversi")
	pflag.StringVar(&playerOne, "player-one", "medium", "AI strength for X")
	pflag.StringVar(&playerTwo, "player-two", "medium", "AI strength for O")
	pflag.IntVarP(&games, "games", "n", 10, "number of games to play")
	pflag.Int64Var(&seed, "seed", 0, "base seed, game i plays with seed+i; 0 picks one from the clock")
	pflag.IntVar(&concurrency, "concurrency", 4, "games running at the same time")
	pflag.BoolVar(&parallel, "parallel", false, "let each engine evaluate root moves concurrently")
	pflag.Parse()
}

func main() {
	if err := config.SetLogLevel(logLevel); err != nil {
		slog.Error("Invalid log level", "level", logLevel)
		os.Exit(1)
	}

	if err := run(); err != nil {
		slog.Error("Selfplay failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if playerOne == session.KindUser || playerTwo == session.KindUser {
		return errors.New("selfplay needs an AI strength on both sides")
	}
	if games <= 0 {
		return fmt.Errorf("number of games must be positive, got %d", games)
	}
	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	baseSeed := seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	started := time.Now()

	var (
		mu    sync.Mutex
		xWins int
		oWins int
		draws int
	)

	var group errgroup.Group
	group.SetLimit(concurrency)

	for i := 0; i < games; i++ {
		gameSeed := baseSeed + int64(i)

		group.Go(func() error {
			s, err := session.New(session.Config{
				Game:      gameName,
				PlayerOne: playerOne,
				PlayerTwo: playerTwo,
				Seed:      gameSeed,
				Parallel:  parallel,
			})
			if err != nil {
				return err
			}

			if err := s.Play(); err != nil {
				return fmt.Errorf("session %s: %w", s.ID(), err)
			}

			x, o := s.Score()
			winner, hasWinner := s.Winner()

			mu.Lock()
			switch {
			case !hasWinner:
				draws++
			case winner == board.X:
				xWins++
			default:
				oWins++
			}
			mu.Unlock()

			slog.Info("Game finished",
				"session_id", s.ID(),
				"seed", gameSeed,
				"moves", s.MoveCount(),
				"score_x", x,
				"score_o", o,
			)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Printf("%s: %d games, base seed %d, finished in %s\n",
		gameName, games, baseSeed, time.Since(started).Round(time.Millisecond))
	fmt.Printf("X (%s) wins: %d\n", playerOne, xWins)
	fmt.Printf("O (%s) wins: %d\n", playerTwo, oWins)
	fmt.Printf("Draws: %d\n", draws)

	return nil
}
