package labeling

import "github.com/katalvlaran/gridbot/grid"

// SelectGoal returns the Treasure with the smallest settled price on a
// labeled grid. Ties go to the first Treasure in row-major order.
// Returns ErrNoTreasureReachable if no Treasure holds a finite price.
//
// Complexity: O(H·W).
func SelectGoal(g *grid.Grid) (grid.Position, grid.Price, error) {
	if g == nil {
		return grid.Position{}, grid.Unset, ErrNilGrid
	}
	var (
		goal  grid.Position
		price = grid.Unset
	)
	for _, p := range g.FindAll(grid.OfKind(grid.Treasure)) {
		cell, _ := g.Get(p)
		if !cell.Price.Settled() {
			continue
		}
		if !price.Settled() || cell.Price < price {
			goal, price = p, cell.Price
		}
	}
	if !price.Settled() {
		return grid.Position{}, grid.Unset, ErrNoTreasureReachable
	}

	return goal, price, nil
}
