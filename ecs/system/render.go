package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// RenderSystem draws sprites with their GlobalTransform and Tint. World
// sprites sort by RenderLayer; ScreenSpace sprites draw after all of them.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.SpriteComponent.Kind(), component.GlobalTransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si := ecs.Has(w, entities[i], component.ScreenSpaceComponent)
		sj := ecs.Has(w, entities[j], component.ScreenSpaceComponent)
		if si != sj {
			return sj
		}
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Image == nil {
			continue
		}
		g, ok := ecs.Get(w, e, component.GlobalTransformComponent)
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		b := s.Image.Bounds()
		if s.Width > 0 && s.Height > 0 && b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
		}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Concat(g.GeoM)

		if tint, ok := ecs.Get(w, e, component.TintComponent); ok {
			if tint.A <= 0 {
				continue
			}
			op.ColorScale.Scale(tint.R*tint.A, tint.G*tint.A, tint.B*tint.A, tint.A)
		}

		screen.DrawImage(s.Image, op)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return 0
}
