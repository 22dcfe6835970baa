package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultProject is the embedded level project file name.
const DefaultProject = "contour.json"

// ErrInvalidLevel marks level data that cannot be used: wrong field types,
// unknown enum values, out of range references or inconsistent grids.
var ErrInvalidLevel = errors.New("levels: invalid level data")

//go:embed *.json
var LevelsFS embed.FS

// IntGrid values.
const (
	CellEmpty = 0
	CellWall  = 1
)

// Entity identifiers the game knows how to spawn.
const (
	EntityPlayer    = "Player"
	EntityGate      = "Gate"
	EntityInfo      = "Info"
	EntityContainer = "Container"
	EntityNpc       = "Npc"
)

type Physics string

const (
	PhysicsFixed   Physics = "Fixed"
	PhysicsDynamic Physics = "Dynamic"
	PhysicsSensor  Physics = "Sensor"
)

type ColliderShape string

const (
	ColliderSphere ColliderShape = "Sphere"
	ColliderRect   ColliderShape = "Rect"
)

type GateKind string

const (
	GateEntry GateKind = "Entry"
	GateExit  GateKind = "Exit"
)

// Project is a decoded and validated level project.
type Project struct {
	Levels []Level
}

// Level is one level. Width and Height count grid cells.
type Level struct {
	Identifier string
	Width      int
	Height     int
	GridSize   int
	IntGrid    []int
	Entities   []Entity
}

// PixelSize returns the level size in pixels.
func (l Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.GridSize), float64(l.Height * l.GridSize)
}

// Cell returns the int grid value at (x, y), or CellEmpty outside the grid.
func (l Level) Cell(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return CellEmpty
	}
	return l.IntGrid[y*l.Width+x]
}

// Entity is a level entity with its fields decoded. X and Y are the entity
// center in pixels.
type Entity struct {
	Identifier string
	X          float64
	Y          float64
	Width      float64
	Height     float64

	Speed         float64
	HasSpeed      bool
	To            int
	Gate          GateKind
	SpriteOffset  [2]float64
	Physics       Physics
	ColliderShape ColliderShape
	Radius        float64
	ColliderSize  [2]float64
	Text          string
}

// Level returns level i.
func (p *Project) Level(i int) (*Level, error) {
	if p == nil || i < 0 || i >= len(p.Levels) {
		return nil, fmt.Errorf("%w: level index %d out of range", ErrInvalidLevel, i)
	}
	return &p.Levels[i], nil
}

// Load reads a project by name, preferring a file under levels/ on disk over
// the embedded copy so edited levels can be tried without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// LoadProject loads and decodes a project. Warnings are returned for the
// caller to log.
func LoadProject(name string) (*Project, []Warning, error) {
	data, err := Load(name)
	if err != nil {
		return nil, nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	project, warnings, err := Decode(data)
	if err != nil {
		return nil, warnings, fmt.Errorf("levels: decode %s: %w", name, err)
	}
	return project, warnings, nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return DefaultProject
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
