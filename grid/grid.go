package grid

import "fmt"

// neighborOffsets is the fixed enumeration order of Neighbors:
// east, west, south, north.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// New returns a height×width grid of Empty cells with Unset prices.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Height:   height,
		Width:    width,
		cells:    make([]Cell, height*width),
		arrivals: make([][4]Price, height*width),
	}
	g.ResetPrices()

	return g, nil
}

// FromKinds builds a grid from a non-empty, rectangular 2D slice of kinds.
// Occupied kinds get an Occupant facing North; callers adjust it with Set.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromKinds(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(kinds[0])
	for _, row := range kinds {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(kinds), w)
	if err != nil {
		return nil, err
	}
	for r, row := range kinds {
		for c, k := range row {
			cell := &g.cells[g.index(Position{Row: r, Col: c})]
			cell.Kind = k
			if k.Occupied() {
				cell.Occupant = &Occupant{Orientation: North}
			}
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Get returns a copy of the cell at p.
func (g *Grid) Get(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	c := g.cells[g.index(p)]
	if c.Occupant != nil {
		occ := *c.Occupant
		c.Occupant = &occ
	}

	return c, nil
}

// Set replaces the kind and occupant at p. The price label is kept.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	cell := &g.cells[g.index(p)]
	cell.Kind = c.Kind
	cell.Occupant = nil
	if c.Occupant != nil {
		occ := *c.Occupant
		cell.Occupant = &occ
	}

	return nil
}

// SetPrice overwrites the price label at p unconditionally.
func (g *Grid) SetPrice(p Position, price Price) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	g.cells[g.index(p)].Price = price

	return nil
}

// Arrival returns the cheapest known cost of standing on p facing o.
func (g *Grid) Arrival(p Position, o Orientation) (Price, error) {
	if !g.InBounds(p) {
		return Unset, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	if !o.Valid() {
		return Unset, nil
	}

	return g.arrivals[g.index(p)][o], nil
}

// SetArrival records the cost of standing on p facing o.
func (g *Grid) SetArrival(p Position, o Orientation, price Price) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	if !o.Valid() {
		return fmt.Errorf("grid: invalid %v at %v", o, p)
	}
	g.arrivals[g.index(p)][o] = price

	return nil
}

// ResetPrices clears every price and arrival label back to Unset.
// Complexity: O(H·W).
func (g *Grid) ResetPrices() {
	for i := range g.cells {
		g.cells[i].Price = Unset
		g.arrivals[i] = [4]Price{Unset, Unset, Unset, Unset}
	}
}

// Neighbors returns the in-bounds orthogonal neighbours of p in the order
// (r, c+1), (r, c-1), (r+1, c), (r-1, c).
//
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range neighborOffsets {
		q := p.Add(d[0], d[1])
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// FindAll returns every position whose cell satisfies pred, scanning
// row-major in ascending order.
//
// Complexity: O(H·W) calls to pred.
func (g *Grid) FindAll(pred func(Position, Cell) bool) []Position {
	var found []Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			if pred(p, g.cells[g.index(p)]) {
				found = append(found, p)
			}
		}
	}

	return found
}

// OfKind returns a FindAll predicate matching cells of kind k.
func OfKind(k Kind) func(Position, Cell) bool {
	return func(_ Position, c Cell) bool { return c.Kind == k }
}

// Clone returns a deep copy of g, labels included.
//
// Complexity: O(H·W).
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Height:   g.Height,
		Width:    g.Width,
		cells:    make([]Cell, len(g.cells)),
		arrivals: make([][4]Price, len(g.arrivals)),
	}
	copy(out.arrivals, g.arrivals)
	for i, c := range g.cells {
		if c.Occupant != nil {
			occ := *c.Occupant
			c.Occupant = &occ
		}
		out.cells[i] = c
	}

	return out
}

// index maps p to its row-major slot.
func (g *Grid) index(p Position) int {
	return p.Row*g.Width + p.Col
}
