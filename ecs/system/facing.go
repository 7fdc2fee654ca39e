package system

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// FacingSystem mirrors left-facing entities after every other blend.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FacingComponent, component.TransformComponent, func(_ ecs.Entity, f *component.Facing, t *component.Transform) {
		if f.Left {
			t.ScaleX = -t.ScaleX
		}
	})
}
