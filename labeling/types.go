package labeling

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridbot/grid"
)

// Sentinel errors returned by Label and SelectGoal.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Label.
	ErrNilGrid = errors.New("labeling: grid is nil")

	// ErrBadOrientation indicates the start facing is not a compass direction.
	ErrBadOrientation = errors.New("labeling: start orientation is invalid")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("labeling: invalid option supplied")

	// ErrNoTreasureReachable indicates labeling finished without any
	// Treasure cell holding a finite price.
	ErrNoTreasureReachable = errors.New("labeling: no treasure reachable")
)

// Options tunes a Label run.
type Options struct {
	// OnSettle is called once per cell, in settle order, when its price
	// becomes final.
	OnSettle func(p grid.Position, price grid.Price)

	// MaxPrice caps the search. Cells costlier than MaxPrice stay grid.Unset.
	MaxPrice int

	// err records the first invalid option.
	err error
}

// Option configures Label via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no hook and no price cap.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(grid.Position, grid.Price) {},
		MaxPrice: math.MaxInt,
	}
}

// WithOnSettle installs a hook observing every settled cell.
func WithOnSettle(fn func(p grid.Position, price grid.Price)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithMaxPrice stops the search at the given cumulative cost.
// A negative cap is recorded and surfaced as ErrOptionViolation.
func WithMaxPrice(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxPrice must be non-negative, got %d", ErrOptionViolation, max)
			return
		}
		o.MaxPrice = max
	}
}
