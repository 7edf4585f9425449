package resolver_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbot/cost"
	"github.com/katalvlaran/gridbot/grid"
	"github.com/katalvlaran/gridbot/labeling"
	"github.com/katalvlaran/gridbot/resolver"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// labelAndResolve labels g from start, picks the goal and resolves a path.
func labelAndResolve(t *testing.T, g *grid.Grid, start grid.Position, facing grid.Orientation, rules cost.Ruleset) (resolver.Path, grid.Position, grid.Price) {
	t.Helper()
	require.NoError(t, labeling.Label(g, start, facing, rules))
	goal, price, err := labeling.SelectGoal(g)
	require.NoError(t, err)
	path, err := resolver.Resolve(g, start, goal, rules)
	require.NoError(t, err)

	return path, goal, price
}

// requireValidPath checks endpoints, adjacency, no revisits and that the
// walked cost equals the goal's price.
func requireValidPath(t *testing.T, g *grid.Grid, path resolver.Path, start, goal grid.Position, facing grid.Orientation, rules cost.Ruleset, price grid.Price) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])

	seen := make(map[grid.Position]bool, len(path))
	for i, p := range path {
		require.False(t, seen[p], "cell %v repeated in %v", p, path)
		seen[p] = true
		if i > 0 {
			require.Equal(t, 1, path[i-1].Manhattan(p), "non-adjacent step %v -> %v", path[i-1], p)
		}
	}

	total, err := cost.PathCost(rules, g, facing, path)
	require.NoError(t, err)
	require.Equal(t, int(price), total, "path %v", path)
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

func TestResolve_OpenFloorStraight(t *testing.T) {
	g := grid.MustParse(
		"@...$",
		".....",
		".....",
	)
	path, goal, price := labelAndResolve(t, g, pos(0, 0), grid.East, cost.Ruleset{})

	require.Equal(t, resolver.Path{pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4)}, path)
	require.Equal(t, 4, path.Steps())
	requireValidPath(t, g, path, pos(0, 0), goal, grid.East, cost.Ruleset{}, price)
}

func TestResolve_ThroughBlockWithLaser(t *testing.T) {
	g := grid.MustParse(
		"@.#",
		".#.",
		"#.$",
	)
	rules := cost.Ruleset{Laser: true}
	path, goal, price := labelAndResolve(t, g, pos(0, 0), grid.East, rules)

	require.Equal(t, grid.Price(8), price)
	require.Equal(t, resolver.Path{pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2), pos(2, 2)}, path)
	requireValidPath(t, g, path, pos(0, 0), goal, grid.East, rules, price)
}

// TestResolve_SymmetricDeterministic: the treasure sits behind a wall with
// two mirror-image routes of equal cost. Both neighbours of the goal tie on
// price and distance, so the first in neighbour order wins, every time.
func TestResolve_SymmetricDeterministic(t *testing.T) {
	rows := []string{
		".$.",
		".#.",
		".@.",
	}
	want := resolver.Path{pos(2, 1), pos(2, 2), pos(1, 2), pos(0, 2), pos(0, 1)}

	for i := 0; i < 10; i++ {
		g := grid.MustParse(rows...)
		path, goal, price := labelAndResolve(t, g, pos(2, 1), grid.North, cost.Ruleset{})
		require.Equal(t, grid.Price(7), price)
		require.Equal(t, want, path, "run %d", i)
		requireValidPath(t, g, path, pos(2, 1), goal, grid.North, cost.Ruleset{}, price)
	}
}

// TestResolve_DirectionalBias: both the east and the south neighbour of the
// goal explain its price. The bot sits south-west, so the south neighbour
// wins even though east comes first in neighbour order.
func TestResolve_DirectionalBias(t *testing.T) {
	g := grid.MustParse(
		"#$.",
		"..#",
		".>.",
		".@.",
	)
	rules := cost.Ruleset{Laser: true}
	path, goal, price := labelAndResolve(t, g, pos(3, 1), grid.East, rules)

	require.Equal(t, pos(0, 1), goal)
	require.Equal(t, grid.Price(10), price)
	require.Equal(t, resolver.Path{pos(3, 1), pos(3, 0), pos(2, 0), pos(1, 0), pos(1, 1), pos(0, 1)}, path)
	requireValidPath(t, g, path, pos(3, 1), goal, grid.East, rules, price)
}

func TestResolve_GoalIsStart(t *testing.T) {
	g := grid.MustParse("@.$")
	require.NoError(t, labeling.Label(g, pos(0, 0), grid.East, cost.Ruleset{}))

	path, err := resolver.Resolve(g, pos(0, 0), pos(0, 0), cost.Ruleset{})
	require.NoError(t, err)
	require.Equal(t, resolver.Path{pos(0, 0)}, path)
	require.Zero(t, path.Steps())
}

func TestPath_String(t *testing.T) {
	p := resolver.Path{pos(0, 0), pos(0, 1), pos(1, 1)}
	require.Equal(t, "(0,0) -> (0,1) -> (1,1)", p.String())
	require.Zero(t, resolver.Path(nil).Steps())
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

func TestResolve_Errors(t *testing.T) {
	_, err := resolver.Resolve(nil, pos(0, 0), pos(0, 0), cost.Ruleset{})
	require.ErrorIs(t, err, resolver.ErrNilGrid)

	g := grid.MustParse(
		"@.#",
		".#.",
		"#.$",
	)
	require.NoError(t, labeling.Label(g, pos(0, 0), grid.East, cost.Ruleset{}))

	// Sealed off without a laser.
	_, err = resolver.Resolve(g, pos(0, 0), pos(2, 2), cost.Ruleset{})
	require.ErrorIs(t, err, resolver.ErrUnreachableGoal)
	// The wall itself is marked unreachable.
	_, err = resolver.Resolve(g, pos(0, 0), pos(1, 1), cost.Ruleset{})
	require.ErrorIs(t, err, resolver.ErrUnreachableGoal)

	_, err = resolver.Resolve(g, pos(0, 0), pos(3, 0), cost.Ruleset{})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = resolver.Resolve(g, pos(-1, 0), pos(0, 1), cost.Ruleset{})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestResolve_Stuck corrupts an arrival label after labeling so that no
// neighbour can explain the goal's price.
func TestResolve_Stuck(t *testing.T) {
	g := grid.MustParse("@...$")
	require.NoError(t, labeling.Label(g, pos(0, 0), grid.East, cost.Ruleset{}))
	require.NoError(t, g.SetArrival(pos(0, 3), grid.East, 99))

	_, err := resolver.Resolve(g, pos(0, 0), pos(0, 4), cost.Ruleset{})
	require.ErrorIs(t, err, resolver.ErrPathReconstructionStuck)

	var stuck *resolver.StuckError
	require.True(t, errors.As(err, &stuck))
	require.Equal(t, pos(0, 4), stuck.At)
	require.Equal(t, resolver.Path{pos(0, 4)}, stuck.Partial)
	require.NotEmpty(t, stuck.Map)
	require.Contains(t, err.Error(), "(0,4)")
}

// TestResolve_WrongRules: labels computed with a laser cannot be explained
// by step costs without one.
func TestResolve_WrongRules(t *testing.T) {
	g := grid.MustParse(
		"@.#",
		".#.",
		"#.$",
	)
	require.NoError(t, labeling.Label(g, pos(0, 0), grid.East, cost.Ruleset{Laser: true}))

	_, err := resolver.Resolve(g, pos(0, 0), pos(2, 2), cost.Ruleset{})
	require.ErrorIs(t, err, resolver.ErrPathReconstructionStuck)
}

//----------------------------------------------------------------------------//
// Randomized
//----------------------------------------------------------------------------//

// TestResolve_RandomMaps resolves a path to the chosen goal on random maps
// and checks it is valid and costs exactly the goal's price.
func TestResolve_RandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	glyphs := []byte("......#>")

	for trial := 0; trial < 300; trial++ {
		h, w := 3+rng.Intn(3), 3+rng.Intn(3)
		rows := make([][]byte, h)
		for r := range rows {
			rows[r] = make([]byte, w)
			for c := range rows[r] {
				rows[r][c] = glyphs[rng.Intn(len(glyphs))]
			}
		}
		start := pos(rng.Intn(h), rng.Intn(w))
		treasure := pos(rng.Intn(h), rng.Intn(w))
		if start == treasure {
			continue
		}
		rows[start.Row][start.Col] = '@'
		rows[treasure.Row][treasure.Col] = '$'

		layout := make([]string, h)
		for r := range rows {
			layout[r] = string(rows[r])
		}
		g := grid.MustParse(layout...)
		facing := grid.Orientation(rng.Intn(4))
		rules := cost.Ruleset{Battery: rng.Intn(2) == 0, Laser: rng.Intn(2) == 0}

		require.NoError(t, labeling.Label(g, start, facing, rules))
		goal, price, err := labeling.SelectGoal(g)
		if errors.Is(err, labeling.ErrNoTreasureReachable) {
			continue
		}
		require.NoError(t, err)

		path, err := resolver.Resolve(g, start, goal, rules)
		require.NoError(t, err, "layout %v start %v facing %v rules %+v", layout, start, facing, rules)
		requireValidPath(t, g, path, start, goal, facing, rules, price)
	}
}
