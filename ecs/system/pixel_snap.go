package system

import (
	"math"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// PixelSnapSystem rounds world-space translations. It only touches
// GlobalTransform, so snapping never feeds back into next frame's blend.
type PixelSnapSystem struct{}

func NewPixelSnapSystem() *PixelSnapSystem {
	return &PixelSnapSystem{}
}

func (s *PixelSnapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PixelSnapComponent, component.GlobalTransformComponent, func(_ ecs.Entity, _ *component.PixelSnap, g *component.GlobalTransform) {
		g.GeoM.SetElement(0, 2, math.Round(g.GeoM.Element(0, 2)))
		g.GeoM.SetElement(1, 2, math.Round(g.GeoM.Element(1, 2)))
	})
}
