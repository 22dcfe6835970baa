package system

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x1f, B: 0x24, A: 0xff}
	wallColor       = color.RGBA{R: 0x3a, G: 0x3f, B: 0x47, A: 0xff}
	wallEdgeColor   = color.RGBA{R: 0x52, G: 0x58, B: 0x61, A: 0xff}
)

// RenderSystem draws the level geometry and every world-space sprite through
// the camera, then screen-space sprites on top. Sprites are ordered by layer,
// then by entity handle.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(backgroundColor)
	cam := activeCamera(w)
	zoom := cam.EffectiveZoom()

	ecs.ForEach2(w, component.WallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, wall *component.Wall, t *component.Transform) {
		x, y := cam.WorldToScreen(t.X-wall.Width/2, t.Y-wall.Height/2)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(wall.Width*zoom), float32(wall.Height*zoom), wallColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(wall.Width*zoom), float32(wall.Height*zoom), 1, wallEdgeColor, false)
	})

	world, overlay := sortedSprites(w)
	for _, e := range world {
		r.drawSprite(w, e, screen, cam)
	}
	for _, e := range overlay {
		r.drawSprite(w, e, screen, cam)
	}
}

// sortedSprites splits visible sprites into world-space and screen-space
// lists, each sorted by layer.
func sortedSprites(w *ecs.World) (world, overlay []ecs.Entity) {
	for _, e := range ecs.Query(w, component.SpriteComponent.Kind()) {
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Alpha <= 0 {
			continue
		}
		if vis, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok && vis.Hidden {
			continue
		}
		if s.ScreenSpace {
			overlay = append(overlay, e)
		} else {
			world = append(world, e)
		}
	}

	byLayer := func(list []ecs.Entity) {
		sort.SliceStable(list, func(i, j int) bool {
			si, _ := ecs.Get(w, list[i], component.SpriteComponent.Kind())
			sj, _ := ecs.Get(w, list[j], component.SpriteComponent.Kind())
			if si.Layer != sj.Layer {
				return si.Layer < sj.Layer
			}
			return list[i] < list[j]
		})
	}
	byLayer(world)
	byLayer(overlay)
	return world, overlay
}

func (r *RenderSystem) drawSprite(w *ecs.World, e ecs.Entity, screen *ebiten.Image, cam component.Camera) {
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	img := frameImage(s)

	op := &ebiten.DrawImageOptions{}
	switch {
	case s.FillScreen:
		b := img.Bounds()
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	case s.ScreenSpace:
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			op.GeoM.Translate(t.X, t.Y)
		}
	default:
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		sx, sy := t.Scale()
		zoom := cam.EffectiveZoom()
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		x, y := cam.WorldToScreen(t.X, t.Y)
		op.GeoM.Translate(x, y)
	}

	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	if s.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
	}
	screen.DrawImage(img, op)
}

// frameImage returns the current frame of a horizontal strip.
func frameImage(s *component.Sprite) *ebiten.Image {
	if s.FrameW <= 0 {
		return s.Image
	}
	b := s.Image.Bounds()
	frames := b.Dx() / s.FrameW
	if frames <= 1 {
		return s.Image
	}
	frame := s.Frame % frames
	if frame < 0 {
		frame = 0
	}
	x := b.Min.X + frame*s.FrameW
	rect := image.Rect(x, b.Min.Y, x+s.FrameW, b.Max.Y)
	if sub, ok := s.Image.SubImage(rect).(*ebiten.Image); ok {
		return sub
	}
	return s.Image
}
