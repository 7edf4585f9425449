package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridbot/cost"
	"github.com/katalvlaran/gridbot/grid"
)

var (
	// ErrMalformedMap indicates a document that does not describe a valid map.
	ErrMalformedMap = errors.New("snapshot: malformed map")
	// ErrUnknownFormat indicates a file extension Load cannot decode.
	ErrUnknownFormat = errors.New("snapshot: unknown file format")
)

// Field is one cell descriptor. Kind is required; a descriptor without a
// field key is malformed rather than empty floor.
type Field struct {
	Kind        *int `json:"field" yaml:"field"`
	Orientation *int `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	YourBot     bool `json:"your_bot,omitempty" yaml:"your_bot,omitempty"`
}

// GameInfo carries the map size and the active rules.
type GameInfo struct {
	MapHeight   int  `json:"map_height" yaml:"map_height"`
	MapWidth    int  `json:"map_width" yaml:"map_width"`
	BatteryGame bool `json:"battery_game" yaml:"battery_game"`
	LaserGame   bool `json:"laser_game" yaml:"laser_game"`
}

// Snapshot is the decoded document.
//
// Map is read row-major: Map[i][j] is grid row i, column j. Orientation
// codes are read in that frame, so 0 North faces row-1, 1 East col+1,
// 2 South row+1 and 3 West col-1. A server that indexes its map as
// [x][y] with y pointing south must send its codes in this frame, or
// turns are priced against the wrong axis.
type Snapshot struct {
	Map      [][]Field `json:"map" yaml:"map"`
	GameInfo GameInfo  `json:"game_info" yaml:"game_info"`
}

// Scene is everything a solve needs: the unlabeled grid, the rules and the
// searching bot's position and facing.
type Scene struct {
	Grid   *grid.Grid
	Rules  cost.Ruleset
	Start  grid.Position
	Facing grid.Orientation
}

// Decode reads a JSON document from r.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode json: %w", err)
	}

	return &s, nil
}

// DecodeYAML reads a YAML document from r.
func DecodeYAML(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode yaml: %w", err)
	}

	return &s, nil
}

// Load reads a document from a .json, .yaml or .yml file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return Decode(bytes.NewReader(data))
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Validate checks the declared size against the rows, every kind and
// orientation code, and that exactly one cell holds the searching bot.
// Every failure wraps ErrMalformedMap.
//
// Complexity: O(H·W).
func (s *Snapshot) Validate() error {
	h, w := s.GameInfo.MapHeight, s.GameInfo.MapWidth
	if h <= 0 || w <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrMalformedMap, h, w)
	}
	if len(s.Map) != h {
		return fmt.Errorf("%w: %d rows, map_height %d", ErrMalformedMap, len(s.Map), h)
	}

	owned := 0
	for r, row := range s.Map {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, map_width %d", ErrMalformedMap, r, len(row), w)
		}
		for c, f := range row {
			at := grid.Position{Row: r, Col: c}
			if f.Kind == nil {
				return fmt.Errorf("%w: missing field at %v", ErrMalformedMap, at)
			}
			kind := grid.Kind(*f.Kind)
			if !kind.Valid() {
				return fmt.Errorf("%w: unknown field %d at %v", ErrMalformedMap, *f.Kind, at)
			}
			if !kind.Occupied() {
				if f.YourBot {
					return fmt.Errorf("%w: your_bot on %v at %v", ErrMalformedMap, kind, at)
				}
				continue
			}
			if f.Orientation == nil || !grid.Orientation(*f.Orientation).Valid() {
				return fmt.Errorf("%w: %v at %v has no valid orientation", ErrMalformedMap, kind, at)
			}
			if f.YourBot {
				owned++
			}
		}
	}
	if owned != 1 {
		return fmt.Errorf("%w: %d cells marked your_bot, want 1", ErrMalformedMap, owned)
	}

	return nil
}

// Build validates s and converts it into a Scene.
// Complexity: O(H·W).
func (s *Snapshot) Build() (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(s.GameInfo.MapHeight, s.GameInfo.MapWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	for r, row := range s.Map {
		for c, f := range row {
			cell := grid.Cell{Kind: grid.Kind(*f.Kind)}
			if cell.Kind.Occupied() {
				cell.Occupant = &grid.Occupant{Orientation: grid.Orientation(*f.Orientation), Owned: f.YourBot}
			}
			if err = g.Set(grid.Position{Row: r, Col: c}, cell); err != nil {
				return nil, err
			}
		}
	}

	start := g.FindAll(func(_ grid.Position, c grid.Cell) bool { return c.Owned() })[0]
	bot, _ := g.Get(start)

	return &Scene{
		Grid:   g,
		Rules:  cost.Ruleset{Battery: s.GameInfo.BatteryGame, Laser: s.GameInfo.LaserGame},
		Start:  start,
		Facing: bot.Occupant.Orientation,
	}, nil
}
