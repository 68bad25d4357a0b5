package game //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/squares/internal/board"
)

func mustBoard(t *testing.T, grid string) *board.Board {
	t.Helper()
	b, err := board.FromGrid(grid)
	require.NoError(t, err)
	return b
}

func TestTicTacToeStart(t *testing.T) {
	rules := NewTicTacToe()
	b := rules.Start()

	require.Equal(t, 3, b.Size())
	require.Equal(t, 9, b.Count(board.Empty))
	require.False(t, rules.IsTerminal(b))
}

func TestTicTacToeLegalMoves(t *testing.T) {
	tests := []struct {
		name      string
		grid      string
		wantMoves int
	}{
		{
			name:      "empty board",
			grid:      "         ",
			wantMoves: 9,
		},
		{
			name:      "mid game",
			grid:      "X   O    ",
			wantMoves: 7,
		},
		{
			name:      "full board",
			grid:      "XOXXOOOXX",
			wantMoves: 0,
		},
		{
			name:      "completed line stops play",
			grid:      "XXX OO   ",
			wantMoves: 0,
		},
	}

	rules := NewTicTacToe()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustBoard(t, test.grid)
			moves := rules.LegalMoves(b, board.X)

			require.Len(t, moves, test.wantMoves)

			// Whenever play continues, the legal moves are exactly the
			// empty cells, for either side.
			if test.wantMoves > 0 {
				require.Equal(t, b.CellsWith(board.Empty), moves)
				require.Equal(t, moves, rules.LegalMoves(b, board.O))
			}
		})
	}
}

func TestTicTacToeApply(t *testing.T) {
	tests := []struct {
		name       string
		grid       string
		coordinate board.Coordinate
		wantErr    error
	}{
		{
			name:       "empty cell",
			grid:       "         ",
			coordinate: board.Coordinate{X: 2, Y: 2},
		},
		{
			name:       "occupied cell",
			grid:       "    X    ",
			coordinate: board.Coordinate{X: 2, Y: 2},
			wantErr:    ErrIllegalMove,
		},
		{
			name:       "out of range",
			grid:       "         ",
			coordinate: board.Coordinate{X: 0, Y: 4},
			wantErr:    board.ErrOutOfRange,
		},
		{
			name:       "game already decided",
			grid:       "XXX OO   ",
			coordinate: board.Coordinate{X: 1, Y: 1},
			wantErr:    ErrIllegalMove,
		},
	}

	rules := NewTicTacToe()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustBoard(t, test.grid)
			before := b.Grid()

			err := rules.Apply(b, test.coordinate, board.O)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				require.Equal(t, before, b.Grid())
				return
			}

			require.NoError(t, err)
			mark, err := b.Get(test.coordinate)
			require.NoError(t, err)
			require.Equal(t, board.O, mark)
		})
	}
}

func TestTicTacToeWinner(t *testing.T) {
	tests := []struct {
		name       string
		grid       string
		wantMark   board.Mark
		wantWinner bool
	}{
		{
			name: "empty board",
			grid: "         ",
		},
		{
			name: "in progress",
			grid: "XO X     ",
		},
		{
			name: "draw",
			grid: "XOXXOOOXX",
		},
		{
			name:       "x wins top row",
			grid:       "XXX OO   ",
			wantMark:   board.X,
			wantWinner: true,
		},
		{
			name:       "x wins main diagonal",
			grid:       "X O XO  X",
			wantMark:   board.X,
			wantWinner: true,
		},
		{
			name:       "x wins reverse diagonal",
			grid:       " OX X XO ",
			wantMark:   board.X,
			wantWinner: true,
		},
		{
			name:       "o wins right column",
			grid:       "XXO XO  O",
			wantMark:   board.O,
			wantWinner: true,
		},
	}

	rules := NewTicTacToe()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustBoard(t, test.grid)

			winner, ok := rules.Winner(b)
			require.Equal(t, test.wantWinner, ok)
			if test.wantWinner {
				require.Equal(t, test.wantMark, winner)
			}

			// A winner always means the game is over.
			if ok {
				require.True(t, rules.IsTerminal(b))
				require.Empty(t, rules.LegalMoves(b, board.X))
				require.Empty(t, rules.LegalMoves(b, board.O))
			}
		})
	}
}

func TestTicTacToeColumnWin(t *testing.T) {
	rules := NewTicTacToe()
	b := rules.Start()

	moves := []struct {
		mark       board.Mark
		coordinate board.Coordinate
	}{
		{board.X, board.Coordinate{X: 1, Y: 1}},
		{board.O, board.Coordinate{X: 2, Y: 2}},
		{board.X, board.Coordinate{X: 1, Y: 2}},
		{board.O, board.Coordinate{X: 3, Y: 3}},
		{board.X, board.Coordinate{X: 1, Y: 3}},
	}

	for _, move := range moves {
		require.False(t, rules.IsTerminal(b))
		require.NoError(t, rules.Apply(b, move.coordinate, move.mark))
	}

	winner, ok := rules.Winner(b)
	require.True(t, ok)
	require.Equal(t, board.X, winner)
	require.True(t, rules.IsTerminal(b))
}

func TestTicTacToeDraw(t *testing.T) {
	rules := NewTicTacToe()
	b := mustBoard(t, "XOXXOOOXX")

	require.True(t, rules.IsTerminal(b))

	_, ok := rules.Winner(b)
	require.False(t, ok)

	require.Equal(t, 5, rules.Score(b, board.X))
	require.Equal(t, 4, rules.Score(b, board.O))
}

func TestTicTacToeEvaluate(t *testing.T) {
	tests := []struct {
		name string
		grid string
		mark board.Mark
		want int
	}{
		{
			name: "won",
			grid: "XXX OO   ",
			mark: board.X,
			want: 1,
		},
		{
			name: "lost",
			grid: "XXX OO   ",
			mark: board.O,
			want: -1,
		},
		{
			name: "undecided",
			grid: "X   O    ",
			mark: board.X,
			want: 0,
		},
		{
			name: "draw",
			grid: "XOXXOOOXX",
			mark: board.X,
			want: 0,
		},
	}

	rules := NewTicTacToe()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, rules.Evaluate(mustBoard(t, test.grid), test.mark))
		})
	}
}

func TestTicTacToeValidate(t *testing.T) {
	tests := []struct {
		name    string
		grid    string
		wantErr bool
	}{
		{
			name: "empty",
			grid: "         ",
		},
		{
			name: "x ahead by one",
			grid: "X O X    ",
		},
		{
			name:    "x ahead by two",
			grid:    "X X X O  ",
			wantErr: true,
		},
		{
			name:    "o ahead by two",
			grid:    "O O O X  ",
			wantErr: true,
		},
		{
			name:    "two winners",
			grid:    "XXXOOO   ",
			wantErr: true,
		},
		{
			name:    "wrong size",
			grid:    "XO X",
			wantErr: true,
		},
	}

	rules := NewTicTacToe()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := rules.Validate(mustBoard(t, test.grid))
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidBoard)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
