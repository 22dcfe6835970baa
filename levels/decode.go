package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Warning describes soft level data problems: a missing optional field that
// was replaced by a default, or an unknown value that was tolerated.
type Warning struct {
	Level   string
	Entity  string
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s/%s.%s: %s", w.Level, w.Entity, w.Field, w.Message)
}

type rawProject struct {
	Levels []rawLevel `json:"levels"`
}

type rawLevel struct {
	Identifier string      `json:"identifier"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	GridSize   int         `json:"grid_size"`
	IntGrid    []int       `json:"int_grid"`
	Entities   []rawEntity `json:"entities"`
}

type rawEntity struct {
	Identifier string                     `json:"identifier"`
	X          float64                    `json:"x"`
	Y          float64                    `json:"y"`
	Width      float64                    `json:"width"`
	Height     float64                    `json:"height"`
	Fields     map[string]json.RawMessage `json:"fields"`
}

// Default collider size for entities that do not author one.
const defaultColliderSize = 8

// Decode parses and validates a level project. Any hard problem returns an
// error wrapping ErrInvalidLevel. Soft problems come back as warnings with
// the defaulted value already applied.
func Decode(data []byte) (*Project, []Warning, error) {
	var raw rawProject
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if len(raw.Levels) == 0 {
		return nil, nil, fmt.Errorf("%w: project has no levels", ErrInvalidLevel)
	}

	var warnings []Warning
	project := &Project{Levels: make([]Level, 0, len(raw.Levels))}
	for i, rl := range raw.Levels {
		lvl, err := decodeLevel(i, rl, len(raw.Levels), &warnings)
		if err != nil {
			return nil, warnings, err
		}
		project.Levels = append(project.Levels, lvl)
	}
	return project, warnings, nil
}

func decodeLevel(index int, rl rawLevel, levelCount int, warnings *[]Warning) (Level, error) {
	name := rl.Identifier
	if name == "" {
		name = fmt.Sprintf("level%d", index)
	}
	if rl.Width <= 0 || rl.Height <= 0 || rl.GridSize <= 0 {
		return Level{}, fmt.Errorf("%w: %s: width, height and grid_size must be positive", ErrInvalidLevel, name)
	}
	if len(rl.IntGrid) != rl.Width*rl.Height {
		return Level{}, fmt.Errorf("%w: %s: int_grid has %d cells, want %d", ErrInvalidLevel, name, len(rl.IntGrid), rl.Width*rl.Height)
	}

	lvl := Level{
		Identifier: name,
		Width:      rl.Width,
		Height:     rl.Height,
		GridSize:   rl.GridSize,
		IntGrid:    rl.IntGrid,
		Entities:   make([]Entity, 0, len(rl.Entities)),
	}
	for _, re := range rl.Entities {
		ent, err := decodeEntity(name, re, levelCount, warnings)
		if err != nil {
			return Level{}, err
		}
		lvl.Entities = append(lvl.Entities, ent)
	}
	return lvl, nil
}

func decodeEntity(level string, re rawEntity, levelCount int, warnings *[]Warning) (Entity, error) {
	r := fieldReader{level: level, entity: re.Identifier, fields: re.Fields, warnings: warnings}
	ent := Entity{
		Identifier: re.Identifier,
		X:          re.X,
		Y:          re.Y,
		Width:      re.Width,
		Height:     re.Height,
	}

	switch re.Identifier {
	case EntityPlayer, EntityGate, EntityInfo, EntityContainer, EntityNpc:
	default:
		r.warn("identifier", "unknown entity, it will not be spawned")
	}

	var err error
	if ent.Speed, ent.HasSpeed, err = r.float("speed"); err != nil {
		return Entity{}, err
	}
	if ent.SpriteOffset, _, err = r.vec2("sprite_offset"); err != nil {
		return Entity{}, err
	}
	if ent.Text, _, err = r.str("text"); err != nil {
		return Entity{}, err
	}

	if re.Identifier == EntityGate {
		if err := r.gate(&ent, levelCount); err != nil {
			return Entity{}, err
		}
	}

	if re.Identifier != EntityPlayer {
		if err := r.physics(&ent); err != nil {
			return Entity{}, err
		}
		if err := r.collider(&ent); err != nil {
			return Entity{}, err
		}
	}
	return ent, nil
}

type fieldReader struct {
	level    string
	entity   string
	fields   map[string]json.RawMessage
	warnings *[]Warning
}

func (r *fieldReader) warn(field, msg string) {
	*r.warnings = append(*r.warnings, Warning{Level: r.level, Entity: r.entity, Field: field, Message: msg})
}

func (r *fieldReader) invalid(field string, err error) error {
	return fmt.Errorf("%w: %s/%s.%s: %v", ErrInvalidLevel, r.level, r.entity, field, err)
}

func (r *fieldReader) raw(name string) (json.RawMessage, bool) {
	v, ok := r.fields[name]
	if !ok || len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

func decodeField[T any](r *fieldReader, name string) (T, bool, error) {
	var out T
	v, ok := r.raw(name)
	if !ok {
		return out, false, nil
	}
	if err := json.Unmarshal(v, &out); err != nil {
		return out, false, r.invalid(name, err)
	}
	return out, true, nil
}

func (r *fieldReader) float(name string) (float64, bool, error) {
	return decodeField[float64](r, name)
}

func (r *fieldReader) integer(name string) (int, bool, error) {
	return decodeField[int](r, name)
}

func (r *fieldReader) str(name string) (string, bool, error) {
	return decodeField[string](r, name)
}

func (r *fieldReader) vec2(name string) ([2]float64, bool, error) {
	v, ok, err := decodeField[[]float64](r, name)
	if err != nil || !ok {
		return [2]float64{}, ok, err
	}
	if len(v) != 2 {
		return [2]float64{}, false, r.invalid(name, fmt.Errorf("want 2 components, got %d", len(v)))
	}
	return [2]float64{v[0], v[1]}, true, nil
}

func (r *fieldReader) gate(ent *Entity, levelCount int) error {
	kind, ok, err := r.str("Gate")
	if err != nil {
		return err
	}
	switch {
	case !ok:
		r.warn("Gate", "missing, defaulting to Exit")
		ent.Gate = GateExit
	case GateKind(kind) == GateEntry || GateKind(kind) == GateExit:
		ent.Gate = GateKind(kind)
	default:
		return r.invalid("Gate", fmt.Errorf("unknown gate kind %q", kind))
	}

	to, ok, err := r.integer("to")
	if err != nil {
		return err
	}
	if !ok {
		r.warn("to", "missing, defaulting to 0")
		to = 0
	}
	if to < 0 || to >= levelCount {
		return r.invalid("to", fmt.Errorf("level %d out of range [0,%d)", to, levelCount))
	}
	ent.To = to
	return nil
}

func (r *fieldReader) physics(ent *Entity) error {
	physics, ok, err := r.str("physics")
	if err != nil {
		return err
	}
	switch {
	case !ok:
		r.warn("physics", "missing, defaulting to Sensor")
		ent.Physics = PhysicsSensor
	case Physics(physics) == PhysicsFixed || Physics(physics) == PhysicsDynamic || Physics(physics) == PhysicsSensor:
		ent.Physics = Physics(physics)
	default:
		r.warn("physics", fmt.Sprintf("unknown value %q, using Sensor", physics))
		ent.Physics = PhysicsSensor
	}
	return nil
}

func (r *fieldReader) collider(ent *Entity) error {
	shape, ok, err := r.str("collider_shape")
	if err != nil {
		return err
	}
	radius, hasRadius, err := r.float("radius")
	if err != nil {
		return err
	}
	size, hasSize, err := r.vec2("collider_size")
	if err != nil {
		return err
	}

	if !ok {
		r.warn("collider_shape", fmt.Sprintf("missing, defaulting to Rect %dx%d", defaultColliderSize, defaultColliderSize))
		ent.ColliderShape = ColliderRect
		ent.ColliderSize = [2]float64{defaultColliderSize, defaultColliderSize}
		return nil
	}

	if ColliderShape(shape) == ColliderSphere {
		ent.ColliderShape = ColliderSphere
		if !hasRadius || radius <= 0 {
			r.warn("radius", "missing, defaulting to half the collider default")
			radius = defaultColliderSize / 2
		}
		ent.Radius = radius
		return nil
	}

	if ColliderShape(shape) != ColliderRect {
		r.warn("collider_shape", fmt.Sprintf("unknown value %q, using Rect", shape))
	}
	ent.ColliderShape = ColliderRect
	if !hasSize || size[0] <= 0 || size[1] <= 0 {
		r.warn("collider_size", "missing, defaulting to the entity size")
		size = [2]float64{ent.Width, ent.Height}
		if size[0] <= 0 || size[1] <= 0 {
			size = [2]float64{defaultColliderSize, defaultColliderSize}
		}
	}
	ent.ColliderSize = size
	return nil
}
