package grid

import "fmt"

// Position addresses a cell by 0-based row and column.
type Position struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the orthogonal distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Orientation is one of the four compass directions an agent can face.
// The numeric values are the game server's wire codes and are cyclic:
// North, East, South, West.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// Orientations lists every orientation in cyclic order.
var Orientations = [4]Orientation{North, East, South, West}

// Valid reports whether o is one of the four compass directions.
func (o Orientation) Valid() bool {
	return o >= North && o <= West
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Kind classifies what a cell holds. Values match the server's field codes.
type Kind int

const (
	Empty       Kind = iota // free floor
	Treasure                // goal cell
	Bot                     // plain agent
	Block                   // obstacle, clearable only by laser
	ResourceBot             // agent carrying battery and laser state
)

// Valid reports whether k is a known kind code.
func (k Kind) Valid() bool {
	return k >= Empty && k <= ResourceBot
}

// Occupied reports whether k denotes a cell held by an agent.
func (k Kind) Occupied() bool {
	return k == Bot || k == ResourceBot
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Treasure:
		return "treasure"
	case Bot:
		return "bot"
	case Block:
		return "block"
	case ResourceBot:
		return "resource-bot"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Price is the cumulative cost label of a cell.
type Price int

const (
	// Unset marks a cell that has not been reached.
	Unset Price = -2
	// Unreachable marks a cell proven unreachable.
	Unreachable Price = -1
)

// Settled reports whether p is a finite cost label.
func (p Price) Settled() bool {
	return p >= 0
}

func (p Price) String() string {
	switch p {
	case Unset:
		return "unset"
	case Unreachable:
		return "unreachable"
	}
	return fmt.Sprintf("%d", int(p))
}

// Occupant is the agent standing on a cell.
type Occupant struct {
	Orientation Orientation // facing direction
	Owned       bool        // true only for the searching agent
}

// Cell is one map location. Occupant is non-nil only for agent kinds.
type Cell struct {
	Kind     Kind
	Price    Price
	Occupant *Occupant
}

// Owned reports whether c holds the searching agent.
func (c Cell) Owned() bool {
	return c.Occupant != nil && c.Occupant.Owned
}

// Grid is a rectangular map with bounds fixed at construction.
// cells and arrivals are row-major: index = row*Width + col.
type Grid struct {
	Height, Width int
	cells         []Cell
	arrivals      [][4]Price
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
