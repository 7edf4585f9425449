// Package resolver rebuilds an explicit route from a grid labeled by the
// labeling package.
//
// Resolve walks backward from the goal. At each cell it considers the
// in-bounds neighbours (east, west, south, north) that are not yet on the
// route, hold a settled price, and explain the cost of the current cell:
// the neighbour's arrival label plus the step cost into the current cell
// must equal the label being explained. The cheapest such neighbour wins.
//
// Ties are broken by directional bias toward the start: the start is
// clamped into the row and column range of the tied neighbours and the
// neighbour closest to that point is taken, then the one closest to the
// start itself, then the first in enumeration order. The rule is
// deterministic, so repeated solves yield the same route.
//
// Errors:
//
//   - ErrNilGrid:                 nil grid.
//   - grid.ErrOutOfBounds:        start or goal outside the grid.
//   - ErrUnreachableGoal:         goal price is unset or unreachable.
//   - ErrPathReconstructionStuck: labels are inconsistent with the route;
//     returned as *StuckError carrying the partial route and a map dump.
package resolver
