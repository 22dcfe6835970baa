package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/contour/assets"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/prefabs"
)

// loadImage resolves sprite images. Tests swap it out to run without a
// graphics context.
var loadImage = assets.Image

// builder collects the first error while components are added to one entity.
type builder struct {
	w    *ecs.World
	e    ecs.Entity
	name string
	err  error
}

func newBuilder(w *ecs.World, name string) *builder {
	return &builder{w: w, e: ecs.CreateEntity(w), name: name}
}

func add[T any](b *builder, kind component.ComponentKind[T], v *T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, kind, v); err != nil {
		b.err = fmt.Errorf("%s: add %T: %w", b.name, v, err)
	}
}

// done returns the entity, destroying it again if any add failed.
func (b *builder) done() (ecs.Entity, error) {
	if b.err != nil {
		ecs.DestroyEntity(b.w, b.e)
		return 0, b.err
	}
	return b.e, nil
}

func spriteFromSpec(spec prefabs.SpriteSpec) *component.Sprite {
	var img *ebiten.Image
	if spec.Image != "" {
		img = loadImage(spec.Image)
	}
	return &component.Sprite{
		Image:   img,
		FrameW:  spec.FrameW,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
		Layer:   spec.Layer,
		Alpha:   1,
	}
}
