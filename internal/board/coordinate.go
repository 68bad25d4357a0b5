package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotTwoNumbers is returned when coordinate input does not consist of
// exactly two numbers.
var ErrNotTwoNumbers = errors.New("coordinate input must be two numbers")

// Coordinate addresses a cell on a board. X is the column number counted
// from the left, Y is the row number counted from the bottom. Both start
// at 1.
type Coordinate struct {
	X int
	Y int
}

// Directions are the eight unit offsets towards the neighbors of a cell.
var Directions = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Offset returns the coordinate shifted by the given direction.
func (c Coordinate) Offset(direction Coordinate) Coordinate {
	return Coordinate{X: c.X + direction.X, Y: c.Y + direction.Y}
}

// String returns the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// ParseCoordinate reads a coordinate from raw user input. The input must
// contain exactly two whitespace-separated numbers: the column and the
// row. Range checking is left to the board.
func ParseCoordinate(raw string) (Coordinate, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: got %d fields", ErrNotTwoNumbers, len(fields))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q is not a number", ErrNotTwoNumbers, fields[0])
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q is not a number", ErrNotTwoNumbers, fields[1])
	}

	return Coordinate{X: x, Y: y}, nil
}
