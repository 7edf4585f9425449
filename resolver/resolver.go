package resolver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridbot/cost"
	"github.com/katalvlaran/gridbot/grid"
)

// Path is an ordered route of orthogonally adjacent positions.
type Path []grid.Position

// Steps returns the number of moves along p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pos := range p {
		parts[i] = pos.String()
	}
	return strings.Join(parts, " -> ")
}

// candidate is a neighbour that can precede the current cell on an
// optimal route.
type candidate struct {
	at    grid.Position
	price grid.Price
	// need holds, per facing, the arrival cost at this cell that explains
	// the step into the current cell; grid.Unset where it does not.
	need [4]grid.Price
}

// Resolve reconstructs the route from start to goal on a grid labeled with
// rules. The result starts at start and ends at goal, inclusive.
//
// Complexity: O(L) time and memory for a route of L cells; each step checks
// at most four neighbours in four facings.
func Resolve(g *grid.Grid, start, goal grid.Position, rules cost.Ruleset) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("resolver: start %v: %w", start, grid.ErrOutOfBounds)
	}
	goalCell, err := g.Get(goal)
	if err != nil {
		return nil, fmt.Errorf("resolver: goal: %w", err)
	}
	if !goalCell.Price.Settled() {
		return nil, fmt.Errorf("%w: %v is %v", ErrUnreachableGoal, goal, goalCell.Price)
	}

	// 1) Facings in which standing on the goal costs exactly its price.
	var need [4]grid.Price
	for _, o := range grid.Orientations {
		need[o] = grid.Unset
		if a, _ := g.Arrival(goal, o); a == goalCell.Price {
			need[o] = a
		}
	}

	path := Path{goal}
	onPath := map[grid.Position]bool{goal: true}
	current, currentKind := goal, goalCell.Kind

	// 2) Step back one cell at a time until start is reached.
	for current != start {
		cands := predecessors(g, current, currentKind, need, onPath, rules)
		if len(cands) == 0 {
			return nil, &StuckError{At: current, Partial: append(Path(nil), path...), Map: g.String()}
		}

		// 3) Cheapest candidate wins; equal prices go to the directional bias.
		pick := cands[0]
		tied := []candidate{pick}
		for _, c := range cands[1:] {
			switch {
			case c.price < pick.price:
				pick, tied = c, []candidate{c}
			case c.price == pick.price:
				tied = append(tied, c)
			}
		}
		if len(tied) > 1 {
			pick = directionalBias(tied, start)
		}

		cell, _ := g.Get(pick.at)
		path = append(path, pick.at)
		onPath[pick.at] = true
		current, currentKind, need = pick.at, cell.Kind, pick.need
	}

	// 4) The walk ran goal to start; flip it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// predecessors lists, in neighbour order, the cells off the route whose
// arrival labels explain one of the needed arrival costs at current.
func predecessors(g *grid.Grid, current grid.Position, kind grid.Kind, need [4]grid.Price, onPath map[grid.Position]bool, rules cost.Ruleset) []candidate {
	var out []candidate
	for _, m := range g.Neighbors(current) {
		if onPath[m] {
			continue
		}
		cell, _ := g.Get(m)
		if !cell.Price.Settled() {
			continue
		}
		dir, _ := cost.OrientationOfStep(m, current)
		want := need[dir]
		if !want.Settled() {
			continue
		}

		c := candidate{at: m, price: cell.Price}
		ok := false
		for _, o := range grid.Orientations {
			c.need[o] = grid.Unset
			a, _ := g.Arrival(m, o)
			if a.Settled() && int(a)+cost.StepCost(rules, o, dir, kind) == int(want) {
				c.need[o] = a
				ok = true
			}
		}
		if ok {
			out = append(out, c)
		}
	}

	return out
}
