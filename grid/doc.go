// Package grid models the rectangular map a bot searches for treasure.
//
// What:
//
//   - Grid is a fixed-size, row-major collection of Cells addressed by Position.
//   - Each Cell carries its Kind, an optional Occupant (facing and ownership)
//     and a mutable Price label written by the labeling engine.
//   - Neighbors enumerates orthogonal neighbours in a fixed order; that order
//     is the tie-break order of every search built on top of the grid.
//
// Neighbour order:
//
//	(r, c+1), (r, c-1), (r+1, c), (r-1, c)   // east, west, south, north
//
// Prices:
//
//   - Unset:       the cell has not been reached.
//   - Unreachable: the cell is proven unreachable (occupied, or an obstacle
//     the ruleset cannot clear).
//   - ≥ 0:         minimal cumulative cost from the search origin.
//
// Errors:
//
//   - ErrEmptyGrid:      grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a position outside the grid was dereferenced.
//
// A Grid is not safe for concurrent mutation. Solves that run in parallel
// must each work on their own Clone.
package grid
