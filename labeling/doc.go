// Package labeling assigns every reachable grid cell its minimal cumulative
// cost from a bot's start position and facing, under a cost.Ruleset.
//
// Algorithm:
//
//   - Uniform-cost search (Dijkstra) over the implicit graph of
//     (position, facing) states, with edge weights from cost.StepCost.
//   - The frontier is a binary min-heap ordered by cost, then by arrival
//     order, so equal costs are served first-in first-out.
//   - A cell's Price is settled the first time any of its states is popped
//     and is never revised afterwards. Every popped state also records its
//     arrival label (grid.Grid.SetArrival), which the resolver replays.
//   - Blocks the ruleset cannot clear are marked grid.Unreachable when popped
//     and never expanded. Cells held by other agents are marked
//     grid.Unreachable as soon as they are seen and never entered.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H states.
//   - Space: O(S) for best-known costs and the heap (lazy decrease-key).
//
// Goal selection (SelectGoal) picks the cheapest settled Treasure, ties
// broken by row-major scan order.
//
// Errors:
//
//   - ErrNilGrid:             nil grid.
//   - grid.ErrOutOfBounds:    start outside the grid.
//   - ErrBadOrientation:      start facing is not a compass direction.
//   - ErrOptionViolation:     an invalid Option was supplied.
//   - ErrNoTreasureReachable: no Treasure holds a finite price.
package labeling
