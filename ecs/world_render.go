package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Renderer draws a fixed list of render systems in order.
type Renderer struct {
	systems []RenderSystem
}

func NewRenderer(systems ...RenderSystem) *Renderer {
	r := &Renderer{}
	for _, s := range systems {
		if s != nil {
			r.systems = append(r.systems, s)
		}
	}
	return r
}

// Draw calls every render system in order.
func (r *Renderer) Draw(w *World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, s := range r.systems {
		s.Draw(w, screen)
	}
}
