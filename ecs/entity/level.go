package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/levels"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

const (
	gateLayer  = 1
	propLayer  = 1
	signRadius = 12
)

// PlayerStart returns the Player entity of lvl, if it has one.
func PlayerStart(lvl *levels.Level) (levels.Entity, bool) {
	if lvl == nil {
		return levels.Entity{}, false
	}
	for _, ent := range lvl.Entities {
		if ent.Identifier == levels.EntityPlayer {
			return ent, true
		}
	}
	return levels.Entity{}, false
}

// SpawnLevel creates the bounds, walls, gates and props of lvl. Every created
// entity is tagged with LevelMember{index}. The Player entity only marks the
// start position and is not spawned here.
func SpawnLevel(w *ecs.World, lvl *levels.Level, index int) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("level: spawn %d: no level", index)
	}

	member := component.LevelMember{Level: index}
	pw, ph := lvl.PixelSize()
	b := newBuilder(w, "level bounds")
	add(b, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: pw, Height: ph})
	add(b, component.LevelMemberComponent.Kind(), &member)
	if _, err := b.done(); err != nil {
		return err
	}

	for _, run := range wallRuns(lvl) {
		if err := spawnWall(w, run, member); err != nil {
			return err
		}
	}

	for _, ent := range lvl.Entities {
		var err error
		switch ent.Identifier {
		case levels.EntityPlayer:
			continue
		case levels.EntityGate:
			err = spawnGate(w, ent, member)
		case levels.EntityInfo, levels.EntityNpc:
			err = spawnSign(w, ent, member)
		case levels.EntityContainer:
			err = spawnContainer(w, ent, member)
		default:
			logger.Log.WithFields(logrus.Fields{
				"level":  lvl.Identifier,
				"entity": ent.Identifier,
			}).Warn("unknown level entity skipped")
		}
		if err != nil {
			return fmt.Errorf("level %s: %w", lvl.Identifier, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level":    lvl.Identifier,
		"index":    index,
		"entities": len(lvl.Entities),
	}).Info("level spawned")
	return nil
}

// DespawnLevel destroys every LevelMember entity and returns how many were
// removed.
func DespawnLevel(w *ecs.World) int {
	removed := 0
	for _, e := range ecs.Query(w, component.LevelMemberComponent.Kind()) {
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	return removed
}

// NewLevelLoader returns a loader that swaps the world's level entities for
// level index of the project returned by project. The project is looked up on
// every load so a reloaded project takes effect on the next level change.
func NewLevelLoader(project func() *levels.Project) func(*ecs.World, int) error {
	return func(w *ecs.World, index int) error {
		lvl, err := project().Level(index)
		if err != nil {
			return fmt.Errorf("level: load %d: %w", index, err)
		}
		DespawnLevel(w)
		return SpawnLevel(w, lvl, index)
	}
}

// wallRun is a horizontal run of wall cells, in pixels.
type wallRun struct {
	x, y, w, h float64
}

// wallRuns merges consecutive wall cells of each row into one rectangle.
func wallRuns(lvl *levels.Level) []wallRun {
	grid := float64(lvl.GridSize)
	var runs []wallRun
	for y := 0; y < lvl.Height; y++ {
		start := -1
		for x := 0; x <= lvl.Width; x++ {
			wall := x < lvl.Width && lvl.Cell(x, y) == levels.CellWall
			switch {
			case wall && start < 0:
				start = x
			case !wall && start >= 0:
				runs = append(runs, wallRun{
					x: float64(start) * grid,
					y: float64(y) * grid,
					w: float64(x-start) * grid,
					h: grid,
				})
				start = -1
			}
		}
	}
	return runs
}

func spawnWall(w *ecs.World, run wallRun, member component.LevelMember) error {
	b := newBuilder(w, "wall")
	add(b, component.WallComponent.Kind(), &component.Wall{Width: run.w, Height: run.h})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: run.x + run.w/2, Y: run.y + run.h/2, ScaleX: 1, ScaleY: 1})
	add(b, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyFixed,
		Shape:  component.ColliderRect,
		Width:  run.w,
		Height: run.h,
	})
	add(b, component.LevelMemberComponent.Kind(), &member)
	_, err := b.done()
	return err
}

func spawnGate(w *ecs.World, ent levels.Entity, member component.LevelMember) error {
	gate := component.Gate{Kind: component.GateEntry, Level: ent.To}
	frame := 0
	if ent.Gate == levels.GateExit {
		gate.Kind = component.GateExit
		frame = 1
	}
	body := bodyFor(ent)
	body.Kind = component.BodySensor

	b := newBuilder(w, "gate")
	add(b, component.GateComponent.Kind(), &gate)
	add(b, component.TransformComponent.Kind(), &component.Transform{X: ent.X, Y: ent.Y, ScaleX: 1, ScaleY: 1})
	add(b, component.PhysicsBodyComponent.Kind(), &body)
	add(b, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   loadImage("gate.png"),
		Frame:   frame,
		FrameW:  16,
		OriginX: 8 - ent.SpriteOffset[0],
		OriginY: 8 - ent.SpriteOffset[1],
		Layer:   gateLayer,
		Alpha:   1,
	})
	add(b, component.LevelMemberComponent.Kind(), &member)
	_, err := b.done()
	return err
}

func spawnSign(w *ecs.World, ent levels.Entity, member component.LevelMember) error {
	body := bodyFor(ent)
	radius := math.Max(ent.Width, ent.Height)
	if radius <= 0 {
		radius = signRadius
	}

	b := newBuilder(w, "sign")
	add(b, component.InteractableComponent.Kind(), &component.Interactable{Text: ent.Text, Radius: radius})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: ent.X, Y: ent.Y, ScaleX: 1, ScaleY: 1})
	add(b, component.PhysicsBodyComponent.Kind(), &body)
	add(b, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   loadImage("sign.png"),
		OriginX: 8 - ent.SpriteOffset[0],
		OriginY: 8 - ent.SpriteOffset[1],
		Layer:   propLayer,
		Alpha:   1,
	})
	add(b, component.LevelMemberComponent.Kind(), &member)
	_, err := b.done()
	return err
}

func spawnContainer(w *ecs.World, ent levels.Entity, member component.LevelMember) error {
	body := bodyFor(ent)
	width, height := ent.Width, ent.Height
	if body.Shape == component.ColliderRect {
		width, height = body.Width, body.Height
	}

	b := newBuilder(w, "container")
	add(b, component.WallComponent.Kind(), &component.Wall{Width: width, Height: height})
	add(b, component.TransformComponent.Kind(), &component.Transform{X: ent.X, Y: ent.Y, ScaleX: 1, ScaleY: 1})
	add(b, component.PhysicsBodyComponent.Kind(), &body)
	if ent.Text != "" {
		add(b, component.InteractableComponent.Kind(), &component.Interactable{Text: ent.Text, Radius: math.Max(width, height)})
	}
	add(b, component.LevelMemberComponent.Kind(), &member)
	_, err := b.done()
	return err
}

// bodyFor maps the physics fields of a level entity onto a static body.
func bodyFor(ent levels.Entity) component.PhysicsBody {
	body := component.PhysicsBody{Kind: component.BodySensor}
	switch ent.Physics {
	case levels.PhysicsFixed:
		body.Kind = component.BodyFixed
	case levels.PhysicsDynamic:
		// Level props never move; a dynamic prop is solid scenery.
		body.Kind = component.BodyFixed
	}
	if ent.ColliderShape == levels.ColliderSphere {
		body.Shape = component.ColliderCircle
		body.Radius = ent.Radius
	} else {
		body.Shape = component.ColliderRect
		body.Width = ent.ColliderSize[0]
		body.Height = ent.ColliderSize[1]
	}
	return body
}
