package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbot/grid"
)

// Unit prices of the cost model.
const (
	BaseStep     = 1 // moving one cell
	BatteryDrain = 1 // battery used per step in battery games
	LaserCharge  = 2 // charging the weapon before clearing a Block
	LaserFire    = 1 // firing at the Block
)

// ErrInvalidStep indicates two positions are not one orthogonal step apart.
var ErrInvalidStep = errors.New("cost: positions are not orthogonally adjacent")

// Ruleset selects which cost terms apply. It is immutable by value.
type Ruleset struct {
	Battery bool // every step also drains the battery
	Laser   bool // Block cells can be shot away and entered
}

// Clearable reports whether a cell of kind k can be entered at all under r,
// ignoring occupancy.
func (r Ruleset) Clearable(k grid.Kind) bool {
	return k != grid.Block || r.Laser
}

// rotationTable[from][to] holds the quarter turns between two orientations.
var rotationTable = func() (t [4][4]int) {
	for from := range t {
		for to := range t[from] {
			d := to - from
			if d < 0 {
				d = -d
			}
			if d == 3 {
				d = 1
			}
			t[from][to] = d
		}
	}
	return t
}()

// RotationCost returns the number of quarter turns from one orientation to
// another: 0, 1 or 2. Turning three quarters one way is one quarter the other.
// Invalid orientations cost nothing to leave or reach.
func RotationCost(from, to grid.Orientation) int {
	if !from.Valid() || !to.Valid() {
		return 0
	}

	return rotationTable[from][to]
}

// OrientationOfStep returns the direction of the single orthogonal move
// from one position to the next.
func OrientationOfStep(from, to grid.Position) (grid.Orientation, error) {
	switch dr, dc := to.Row-from.Row, to.Col-from.Col; {
	case dr == 0 && dc == 1:
		return grid.East, nil
	case dr == 0 && dc == -1:
		return grid.West, nil
	case dr == 1 && dc == 0:
		return grid.South, nil
	case dr == -1 && dc == 0:
		return grid.North, nil
	}

	return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidStep, from, to)
}

// StepCost returns the price of turning from last to next and moving one
// cell into a destination of kind dest.
func StepCost(r Ruleset, last, next grid.Orientation, dest grid.Kind) int {
	c := BaseStep + RotationCost(last, next)
	if r.Battery {
		c += BatteryDrain
	}
	if r.Laser && dest == grid.Block {
		c += LaserCharge + LaserFire
	}

	return c
}

// PathCost sums StepCost along path, starting from the first position
// facing facing. Kinds are read from g.
//
// Complexity: O(len(path)).
func PathCost(r Ruleset, g *grid.Grid, facing grid.Orientation, path []grid.Position) (int, error) {
	total := 0
	last := facing
	for i := 1; i < len(path); i++ {
		next, err := OrientationOfStep(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		cell, err := g.Get(path[i])
		if err != nil {
			return 0, err
		}
		total += StepCost(r, last, next, cell.Kind)
		last = next
	}

	return total, nil
}
