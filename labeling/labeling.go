package labeling

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridbot/cost"
	"github.com/katalvlaran/gridbot/grid"
)

// Label resets every price on g and labels each cell reachable from start,
// facing facing, with its minimal cumulative cost under rules.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. options must be valid (ErrOptionViolation).
//  3. start must lie within g (grid.ErrOutOfBounds).
//  4. facing must be a compass direction (ErrBadOrientation).
//
// On return every reachable cell holds a settled price, every cell proven
// unreachable holds grid.Unreachable and everything else grid.Unset.
// g is mutated in place and must not be shared with a concurrent Label.
//
// Complexity: O(S·log S) time and O(S) memory, S = 4·H·W (position, facing)
// states.
func Label(g *grid.Grid, start grid.Position, facing grid.Orientation, rules cost.Ruleset, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	if !g.InBounds(start) {
		return fmt.Errorf("labeling: start %v: %w", start, grid.ErrOutOfBounds)
	}
	if !facing.Valid() {
		return fmt.Errorf("%w: %v", ErrBadOrientation, facing)
	}

	// Per-state bookkeeping: four facings for every cell.
	n := g.Height * g.Width
	r := &runner{
		g:        g,
		rules:    rules,
		options:  cfg,
		best:     make([][4]int, n),
		expanded: make([][4]bool, n),
		pq:       make(frontier, 0, n),
	}
	r.init(start, facing)
	r.process()

	return nil
}

// runner holds the mutable state of a single Label execution.
type runner struct {
	g        *grid.Grid
	rules    cost.Ruleset
	options  Options
	best     [][4]int  // best known cost per (cell, facing); -1 when unknown
	expanded [][4]bool // state already popped and relaxed
	pq       frontier
	seq      uint64 // arrival counter for FIFO tie-breaking
}

// init clears labels and seeds the frontier with the start state at cost 0.
func (r *runner) init(start grid.Position, facing grid.Orientation) {
	r.g.ResetPrices()
	for i := range r.best {
		r.best[i] = [4]int{-1, -1, -1, -1}
	}
	heap.Init(&r.pq)
	r.push(0, start, facing)
}

// process pops states in non-decreasing cost order until the frontier is
// empty or the price cap is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state; equal costs come out in arrival order.
		item := heap.Pop(&r.pq).(*frontierItem)
		k := r.index(item.at)

		// 2) Stale heap entry: a cheaper copy of this state was already served.
		if r.expanded[k][item.facing] || item.cost > r.best[k][item.facing] {
			continue
		}

		// 3) Past the price cap nothing further can be settled.
		if item.cost > r.options.MaxPrice {
			break
		}

		// 4) Skip cells already proven unreachable, and mark an obstacle the
		//    ruleset cannot clear as a dead end.
		cell, _ := r.g.Get(item.at)
		if cell.Price == grid.Unreachable {
			continue
		}
		if !r.rules.Clearable(cell.Kind) {
			_ = r.g.SetPrice(item.at, grid.Unreachable)
			continue
		}

		// 5) Record the arrival label. The first state popped for a cell
		//    settles its price for good.
		r.expanded[k][item.facing] = true
		_ = r.g.SetArrival(item.at, item.facing, grid.Price(item.cost))
		if !cell.Price.Settled() {
			_ = r.g.SetPrice(item.at, grid.Price(item.cost))
			r.options.OnSettle(item.at, grid.Price(item.cost))
		}

		// 6) Expand into the neighbours.
		r.relax(item)
	}
}

// relax pushes every neighbour state that can still improve on what is known.
func (r *runner) relax(from *frontierItem) {
	for _, next := range r.g.Neighbors(from.at) {
		cell, _ := r.g.Get(next)

		// 1) Occupied cells are never entered. The start cell is already
		//    settled and keeps its price.
		if cell.Kind.Occupied() {
			if !cell.Price.Settled() {
				_ = r.g.SetPrice(next, grid.Unreachable)
			}
			continue
		}
		if cell.Price == grid.Unreachable {
			continue
		}

		// 2) Price the turn and the step; states beyond the cap are dropped.
		dir, _ := cost.OrientationOfStep(from.at, next)
		newCost := from.cost + cost.StepCost(r.rules, from.facing, dir, cell.Kind)
		if newCost > r.options.MaxPrice {
			continue
		}

		// 3) A settled cell can turn any way for at most two quarter turns, so
		//    a state that is not cheaper than that can never help.
		if cell.Price.Settled() && newCost >= int(cell.Price)+2 {
			continue
		}

		// 4) Queue only strict improvements of the (cell, facing) state.
		if b := r.best[r.index(next)][dir]; b >= 0 && newCost >= b {
			continue
		}
		r.push(newCost, next, dir)
	}
}

// push records newCost as the best known cost of (at, facing) and queues it.
func (r *runner) push(c int, at grid.Position, facing grid.Orientation) {
	r.best[r.index(at)][facing] = c
	r.seq++
	heap.Push(&r.pq, &frontierItem{cost: c, seq: r.seq, at: at, facing: facing})
}

// index maps a position to its row-major slot.
func (r *runner) index(p grid.Position) int {
	return p.Row*r.g.Width + p.Col
}

// frontierItem is one (cumulative cost, position, incoming facing) entry.
type frontierItem struct {
	cost   int
	seq    uint64
	at     grid.Position
	facing grid.Orientation
}

// frontier is a min-heap of *frontierItem ordered by cost, then arrival.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

// Less serves lower cost first and, among equal costs, earlier arrivals.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
