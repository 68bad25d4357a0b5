package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinSize and MaxSize bound the supported board sizes.
	MinSize = 2
	MaxSize = 9
)

// ErrOutOfRange is returned when a coordinate lies outside the board.
var ErrOutOfRange = errors.New("coordinates are out of range")

// Cell pairs a coordinate with the mark it currently holds.
type Cell struct {
	Coordinate Coordinate
	Mark       Mark
}

// Board is a square grid of marks. The size is fixed at construction.
//
// Cells are stored row-major starting at the top-left corner, so the cell
// with coordinate (1, size) has index 0 and the cell with coordinate
// (size, 1) has the highest index.
type Board struct {
	size  int
	cells []Mark
}

// New creates an empty board of the given size.
func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("invalid board size %d: must be between %d and %d", size, MinSize, MaxSize)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// MustNew creates an empty board of the given size and panics if the size
// is invalid.
func MustNew(size int) *Board {
	b, err := New(size)
	if err != nil {
		panic(err)
	}
	return b
}

// FromGrid creates a board from its flat string representation: one
// character per cell, row-major from the top-left. Both ' ' and '_' mean
// an empty cell. The string length must be a square of a supported size.
func FromGrid(grid string) (*Board, error) {
	size := 0
	for size*size < len(grid) {
		size++
	}
	if size*size != len(grid) {
		return nil, fmt.Errorf("invalid grid of length %d: board must be square", len(grid))
	}

	b, err := New(size)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(grid); i++ {
		mark, err := ParseMark(grid[i])
		if err != nil {
			return nil, fmt.Errorf("invalid grid: %w", err)
		}
		b.cells[i] = mark
	}

	return b, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether the coordinate lies on the board.
func (b *Board) Contains(c Coordinate) bool {
	return c.X >= 1 && c.X <= b.size && c.Y >= 1 && c.Y <= b.size
}

func (b *Board) index(c Coordinate) int {
	return (c.X - 1) + b.size*(b.size-c.Y)
}

func (b *Board) coordinate(index int) Coordinate {
	return Coordinate{
		X: index%b.size + 1,
		Y: b.size - index/b.size,
	}
}

// Get returns the mark at the coordinate.
func (b *Board) Get(c Coordinate) (Mark, error) {
	if !b.Contains(c) {
		return Empty, fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	return b.cells[b.index(c)], nil
}

// Set overwrites the mark at the coordinate. It performs no legality
// check, that is the responsibility of the game rules.
func (b *Board) Set(c Coordinate, mark Mark) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	b.cells[b.index(c)] = mark
	return nil
}

// Cells returns all cells in scan order: row-major from the top-left.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	for i, mark := range b.cells {
		cells[i] = Cell{Coordinate: b.coordinate(i), Mark: mark}
	}
	return cells
}

// CellsWith returns the coordinates of all cells holding the given mark,
// in scan order.
func (b *Board) CellsWith(mark Mark) []Coordinate {
	var coordinates []Coordinate
	for i, m := range b.cells {
		if m == mark {
			coordinates = append(coordinates, b.coordinate(i))
		}
	}
	return coordinates
}

// Count returns the number of cells holding the given mark.
func (b *Board) Count(mark Mark) int {
	count := 0
	for _, m := range b.cells {
		if m == mark {
			count++
		}
	}
	return count
}

// Line returns the cells along a ray from start in the given direction,
// excluding start itself, stopping at the board edge.
func (b *Board) Line(start, direction Coordinate) []Cell {
	var cells []Cell
	for c := start.Offset(direction); b.Contains(c); c = c.Offset(direction) {
		cells = append(cells, Cell{Coordinate: c, Mark: b.cells[b.index(c)]})
	}
	return cells
}

// Rows returns all rows of the board, top row first.
func (b *Board) Rows() [][]Cell {
	cells := b.Cells()
	rows := make([][]Cell, b.size)
	for i := range rows {
		rows[i] = cells[i*b.size : (i+1)*b.size]
	}
	return rows
}

// Columns returns all columns of the board, leftmost column first.
func (b *Board) Columns() [][]Cell {
	cells := b.Cells()
	columns := make([][]Cell, b.size)
	for i := range columns {
		column := make([]Cell, b.size)
		for j := 0; j < b.size; j++ {
			column[j] = cells[j*b.size+i]
		}
		columns[i] = column
	}
	return columns
}

// Diagonals returns the main diagonal and the reverse diagonal.
func (b *Board) Diagonals() [][]Cell {
	cells := b.Cells()
	main := make([]Cell, b.size)
	reverse := make([]Cell, b.size)
	for i := 0; i < b.size; i++ {
		main[i] = cells[i*(b.size+1)]
		reverse[i] = cells[(i+1)*(b.size-1)]
	}
	return [][]Cell{main, reverse}
}

// Copy returns an independent snapshot of the board. Mutating the copy
// never affects the original.
func (b *Board) Copy() *Board {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and cell contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, mark := range b.cells {
		if other.cells[i] != mark {
			return false
		}
	}
	return true
}

// Grid returns the flat string representation of the board, row-major
// from the top-left, with ' ' for empty cells. It is the inverse of
// FromGrid and doubles as a cheap comparable key.
func (b *Board) Grid() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, mark := range b.cells {
		sb.WriteString(mark.String())
	}
	return sb.String()
}

// String renders the board as a bordered text grid with coordinate axes,
// top row first:
//
//	  ---------
//	3 |       |
//	2 |   X   |
//	1 |       |
//	  ---------
//	    1 2 3
func (b *Board) String() string {
	var sb strings.Builder

	border := "  " + strings.Repeat("-", 2*b.size+3)

	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := b.size; y >= 1; y-- {
		fmt.Fprintf(&sb, "%d |", y)
		for x := 1; x <= b.size; x++ {
			sb.WriteByte(' ')
			sb.WriteString(b.cells[b.index(Coordinate{X: x, Y: y})].String())
		}
		sb.WriteString(" |\n")
	}

	sb.WriteString(border)
	sb.WriteString("\n    ")
	for x := 1; x <= b.size; x++ {
		fmt.Fprintf(&sb, "%d ", x)
	}

	return sb.String()
}
