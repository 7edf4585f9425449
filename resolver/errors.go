package resolver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbot/grid"
)

var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Resolve.
	ErrNilGrid = errors.New("resolver: grid is nil")
	// ErrUnreachableGoal indicates the goal holds no settled price.
	ErrUnreachableGoal = errors.New("resolver: goal is unreachable")
	// ErrPathReconstructionStuck indicates the labels admit no further step.
	// It signals a bug or a grid mutated between labeling and resolving.
	ErrPathReconstructionStuck = errors.New("resolver: path reconstruction stuck")
)

// StuckError describes a failed reconstruction.
type StuckError struct {
	At      grid.Position // cell with no admissible predecessor
	Partial Path          // cells walked so far, goal first
	Map     string        // rendered labels at the time of failure
}

func (e *StuckError) Error() string {
	return fmt.Sprintf("%v at %v after %d cells, partial route %v\n%s",
		ErrPathReconstructionStuck, e.At, len(e.Partial), e.Partial, e.Map)
}

// Unwrap lets errors.Is match ErrPathReconstructionStuck.
func (e *StuckError) Unwrap() error {
	return ErrPathReconstructionStuck
}
