// Package gallery implements the prism gallery: a brick breaker variant where
// the paddle shoots lasers through a field of bricks, prism blocks that split
// and reflect beams, and turrets that shoot back.
package gallery

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CellType represents the different level pieces.
type CellType int

const (
	CellEmpty  CellType = iota // Nothing
	CellBrick                  // Destroyed in one hit
	CellHard                   // Requires 2 hits to destroy
	CellSolid                  // Indestructible, absorbs projectiles
	CellPrism                  // Indestructible, splits and reflects lasers
	CellTurret                 // Destructible, fires at the paddle
)

// String returns the cell type name.
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellBrick:
		return "brick"
	case CellHard:
		return "hard"
	case CellSolid:
		return "solid"
	case CellPrism:
		return "prism"
	case CellTurret:
		return "turret"
	default:
		return "unknown"
	}
}

// Cell represents a single grid cell of the level.
type Cell struct {
	Type   CellType
	Points int  // Points awarded when destroyed
	Alive  bool // Whether the piece is still present
	HP     int  // Hit points remaining
}

// Destructible reports whether the cell counts toward clearing the level.
func (c Cell) Destructible() bool {
	return c.Alive && (c.Type == CellBrick || c.Type == CellHard || c.Type == CellTurret)
}

// Blocking reports whether the cell closes off a neighboring prism face.
func (c Cell) Blocking() bool {
	return c.Alive && c.Type != CellEmpty
}

// Level represents a playable level layout.
type Level struct {
	ID     string
	Name   string
	Width  int      // Number of columns
	Height int      // Number of rows
	Cells  [][]Cell // 2D grid [row][col], row 0 at the top
}

// Clone creates a deep copy of the level (for reset).
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:     l.ID,
		Name:   l.Name,
		Width:  l.Width,
		Height: l.Height,
		Cells:  make([][]Cell, len(l.Cells)),
	}
	for i, row := range l.Cells {
		clone.Cells[i] = make([]Cell, len(row))
		copy(clone.Cells[i], row)
	}
	return clone
}

// InBounds reports whether (row, col) lies on the grid.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < l.Height && col >= 0 && col < l.Width
}

// CountAlive returns the number of remaining destructible pieces.
func (l *Level) CountAlive() int {
	count := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Destructible() {
				count++
			}
		}
	}
	return count
}

// Count returns how many live cells of the given type the level has.
func (l *Level) Count(t CellType) int {
	count := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Alive && c.Type == t {
				count++
			}
		}
	}
	return count
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = brick (10 points)
//	'.' = empty
//	'1'-'9' = brick with custom points (10 * digit)
//	'H' = hard brick (2 HP, 20 points)
//	'X' = solid block
//	'P' = prism block
//	'T' = laser turret
func ParseLevel(id, name string, lines []string) *Level {
	if len(lines) == 0 {
		return &Level{ID: id, Name: name}
	}

	// Find max width
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Cells:  make([][]Cell, len(lines)),
	}

	for row, line := range lines {
		level.Cells[row] = make([]Cell, maxWidth)
		for col := 0; col < maxWidth; col++ {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}
			level.Cells[row][col] = parseCell(ch)
		}
	}

	return level
}

func parseCell(ch byte) Cell {
	switch {
	case ch == '#':
		return Cell{Type: CellBrick, Points: 10, Alive: true, HP: 1}
	case ch >= '1' && ch <= '9':
		return Cell{Type: CellBrick, Points: int(ch-'0') * 10, Alive: true, HP: 1}
	case ch == 'H' || ch == 'h':
		return Cell{Type: CellHard, Points: 20, Alive: true, HP: 2}
	case ch == 'X' || ch == 'x':
		return Cell{Type: CellSolid, Alive: true}
	case ch == 'P' || ch == 'p':
		return Cell{Type: CellPrism, Alive: true}
	case ch == 'T' || ch == 't':
		// Points and HP come from the turret config at load time.
		return Cell{Type: CellTurret, Alive: true, HP: 1}
	default:
		return Cell{Type: CellEmpty}
	}
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: a single row of prisms in front of the bricks
		ParseLevel("first_light", "First Light", []string{
			"####################",
			"####################",
			"....................",
			"..P....P....P....P..",
			"....................",
		}),

		// Level 2: turrets guarded by prisms
		ParseLevel("gallery", "Gallery", []string{
			"##########T#########",
			"####################",
			"....................",
			"...P.....P.P.....P..",
			"....................",
			"..........T.........",
		}),

		// Level 3: diamond of prisms
		ParseLevel("lattice", "Lattice", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"####################",
			".........P..........",
			"........P.P.........",
			".......P...P........",
			"........P.P.........",
			".........P..........",
		}),

		// Level 4: solid walls force bank shots
		ParseLevel("bastion", "Bastion", []string{
			"T..##########....T..",
			"XXX##########XXXXXXX",
			"....................",
			"XXXXXXXX..XXXXXXXXXX",
			"....P..........P....",
			"....................",
		}),

		// Level 5: prisms embedded in the wall
		ParseLevel("cathedral", "Cathedral", []string{
			"HHHHHHHT..THHHHHHHHH",
			"H#######PP########H.",
			"H######P..P#######H.",
			"....................",
			"...P....P...P....P..",
		}),
	}
}

// ErrNoLevels is returned for a level pack without any levels.
var ErrNoLevels = errors.New("gallery: level file has no levels")

// LevelFile is the YAML layout of a level pack.
type LevelFile struct {
	Levels []LevelSpec `yaml:"levels"`
}

// LevelSpec is one level in a level pack.
type LevelSpec struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseLevelFile decodes a YAML level pack.
func ParseLevelFile(data []byte) ([]*Level, error) {
	var file LevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("gallery: cannot parse level file: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, ErrNoLevels
	}

	levels := make([]*Level, 0, len(file.Levels))
	seen := make(map[string]bool, len(file.Levels))
	for i, spec := range file.Levels {
		if spec.ID == "" {
			return nil, fmt.Errorf("gallery: level %d has no id", i)
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("gallery: duplicate level id %q", spec.ID)
		}
		seen[spec.ID] = true
		if len(spec.Rows) == 0 {
			return nil, fmt.Errorf("gallery: level %q has no rows", spec.ID)
		}
		name := spec.Name
		if name == "" {
			name = spec.ID
		}
		levels = append(levels, ParseLevel(spec.ID, name, spec.Rows))
	}
	return levels, nil
}

// LoadLevelFile reads a YAML level pack from disk.
func LoadLevelFile(path string) ([]*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gallery: cannot read level file %s: %w", path, err)
	}
	return ParseLevelFile(data)
}

// GetLevelByID returns a copy of a built-in level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level.Clone(), true
		}
	}
	return nil, false
}

// LevelCount returns the total number of built-in levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
