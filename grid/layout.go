package grid

import "fmt"

// Parse builds a grid from a text layout, one string per row, using the
// glyphs of Layout and Render:
//
//	.  Empty          $  Treasure       #  Block
//	@  searching Bot (Owned, facing North)
//	&  searching ResourceBot (Owned, facing North)
//	^ > v <  foreign Bot facing North, East, South, West
//	A  foreign ResourceBot facing North
//
// Returns ErrEmptyGrid, ErrNonRectangular, or an error naming an unknown glyph.
//
// Complexity: O(H·W).
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c := 0; c < w; c++ {
			cell, err := cellFromGlyph(row[c])
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Position{Row: r, Col: c})
			}
			g.cells[g.index(Position{Row: r, Col: c})] = cell
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// fixed layouts.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}

	return g
}

func cellFromGlyph(b byte) (Cell, error) {
	c := Cell{Price: Unset}
	switch b {
	case '.':
		c.Kind = Empty
	case '$':
		c.Kind = Treasure
	case '#':
		c.Kind = Block
	case '@':
		c.Kind, c.Occupant = Bot, &Occupant{Orientation: North, Owned: true}
	case '&':
		c.Kind, c.Occupant = ResourceBot, &Occupant{Orientation: North, Owned: true}
	case 'A':
		c.Kind, c.Occupant = ResourceBot, &Occupant{Orientation: North}
	default:
		for o, fb := range facingGlyph {
			if fb == b {
				c.Kind, c.Occupant = Bot, &Occupant{Orientation: Orientation(o)}
				return c, nil
			}
		}
		return Cell{}, fmt.Errorf("grid: unknown glyph %q", b)
	}

	return c, nil
}
