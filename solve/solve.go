package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbot/cost"
	"github.com/katalvlaran/gridbot/grid"
	"github.com/katalvlaran/gridbot/labeling"
	"github.com/katalvlaran/gridbot/resolver"
	"github.com/katalvlaran/gridbot/snapshot"
)

// ErrNilScene indicates a nil *snapshot.Scene was passed to Solve.
var ErrNilScene = errors.New("solve: scene is nil")

// Result is the outcome of one planning pass.
type Result struct {
	Path    resolver.Path // start to goal, inclusive
	Goal    grid.Position // chosen treasure
	Cost    grid.Price    // settled price of Goal
	Labeled *grid.Grid    // the labeled copy the path was resolved on
}

// Solve plans a route for scene's searching bot.
func Solve(scene *snapshot.Scene, opts ...labeling.Option) (*Result, error) {
	if scene == nil {
		return nil, ErrNilScene
	}

	return Plan(scene.Grid, scene.Start, scene.Facing, scene.Rules, opts...)
}

// Plan labels a clone of g from start facing facing under rules, selects the
// cheapest reachable treasure and resolves the route to it.
// Errors from labeling and resolving are returned wrapped; match them with
// errors.Is against the sentinels of those packages.
//
// Complexity: dominated by labeling.Label, O(S·log S) with S = 4·H·W.
func Plan(g *grid.Grid, start grid.Position, facing grid.Orientation, rules cost.Ruleset, opts ...labeling.Option) (*Result, error) {
	if g == nil {
		return nil, labeling.ErrNilGrid
	}
	work := g.Clone()

	if err := labeling.Label(work, start, facing, rules, opts...); err != nil {
		return nil, fmt.Errorf("solve: label: %w", err)
	}
	goal, price, err := labeling.SelectGoal(work)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	path, err := resolver.Resolve(work, start, goal, rules)
	if err != nil {
		return nil, fmt.Errorf("solve: resolve: %w", err)
	}

	return &Result{Path: path, Goal: goal, Cost: price, Labeled: work}, nil
}
