// Package ai implements the move-selection engine: a minimax search with
// difficulty-dependent depth and randomized tie-breaking.
package ai

import (
	"errors"
	"fmt"
)

// Strength selects the search policy of an Engine.
type Strength string

const (
	// Easy picks a uniformly random legal move.
	Easy Strength = "easy"

	// Medium solves the game exactly when few empty cells remain and
	// otherwise falls back to the best immediate evaluation.
	Medium Strength = "medium"

	// Hard solves the game exactly whenever feasible and otherwise
	// searches a fixed number of moves ahead.
	Hard Strength = "hard"

	// Nightmare searches like Hard but deeper, and always breaks ties
	// deterministically by taking the first best move discovered.
	Nightmare Strength = "nightmare"
)

// ErrUnknownStrength is returned for unsupported strength names.
var ErrUnknownStrength = errors.New("unknown strength")

// ParseStrength converts a strength name to a Strength.
func ParseStrength(raw string) (Strength, error) {
	switch Strength(raw) {
	case Easy, Medium, Hard, Nightmare:
		return Strength(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrength, raw)
}
