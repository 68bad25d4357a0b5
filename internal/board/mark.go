package board

import "fmt"

// Mark identifies which side occupies a cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Opponent returns the mark of the other side. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// String returns the single-character representation used on grids.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// ParseMark converts a grid character to a Mark. Both ' ' and '_' mean
// an empty cell.
func ParseMark(c byte) (Mark, error) {
	switch c {
	case 'X':
		return X, nil
	case 'O':
		return O, nil
	case ' ', '_':
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid mark character %q", c)
}
