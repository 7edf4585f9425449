package grid

import (
	"fmt"
	"io"
	"strings"
)

// facingGlyph draws a foreign agent by the way it faces.
var facingGlyph = [4]byte{'^', '>', 'v', '<'}

// glyph returns the single-character map symbol for c.
func (c Cell) glyph() byte {
	switch {
	case c.Owned() && c.Kind == ResourceBot:
		return '&'
	case c.Owned():
		return '@'
	case c.Kind == ResourceBot:
		return 'A'
	case c.Occupant != nil && c.Occupant.Orientation.Valid():
		return facingGlyph[c.Occupant.Orientation]
	case c.Kind.Occupied():
		return '^'
	case c.Kind == Treasure:
		return '$'
	case c.Kind == Block:
		return '#'
	}
	return '.'
}

// label returns the price part of a rendered cell.
func (p Price) label() string {
	switch p {
	case Unset:
		return "-"
	case Unreachable:
		return "x"
	}
	return fmt.Sprintf("%d", int(p))
}

// Render writes one line per row. Every cell is its glyph followed by its
// price label ("-" unset, "x" unreachable), padded to a common width:
//
//	@0  .1  .2
//	.2  #x  $3
func (g *Grid) Render(w io.Writer) error {
	width := 1
	for _, c := range g.cells {
		if n := len(c.Price.label()); n > width {
			width = n
		}
	}
	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		sb.Reset()
		for c := 0; c < g.Width; c++ {
			cell := g.cells[g.index(Position{Row: r, Col: c})]
			if c > 0 {
				sb.WriteString("  ")
			}
			sb.WriteByte(cell.glyph())
			fmt.Fprintf(&sb, "%-*s", width, cell.Price.label())
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, strings.TrimRight(sb.String(), " \n")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// Layout returns one glyph string per row, without prices. It is the
// inverse of Parse up to facing: kinds, ownership and the facing of
// foreign Bots survive, while owned agents and foreign ResourceBots are
// drawn without a facing and parse back facing North.
//
// Complexity: O(H·W).
func (g *Grid) Layout() []string {
	rows := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for r := range rows {
		for c := range buf {
			buf[c] = g.cells[g.index(Position{Row: r, Col: c})].glyph()
		}
		rows[r] = string(buf)
	}

	return rows
}

// String renders the grid as text.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)

	return sb.String()
}
