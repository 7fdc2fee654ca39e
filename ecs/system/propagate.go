package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// PropagateSystem rebuilds every GlobalTransform from the Transform
// hierarchy. A missing or dead parent makes the child a root; a parent
// cycle is broken at the entity where it is detected.
type PropagateSystem struct {
	done    map[ecs.Entity]ebiten.GeoM
	visited map[ecs.Entity]bool
}

func NewPropagateSystem() *PropagateSystem {
	return &PropagateSystem{
		done:    make(map[ecs.Entity]ebiten.GeoM),
		visited: make(map[ecs.Entity]bool),
	}
}

func (s *PropagateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clear(s.done)
	clear(s.visited)

	ecs.ForEach2(w, component.TransformComponent, component.GlobalTransformComponent, func(e ecs.Entity, _ *component.Transform, g *component.GlobalTransform) {
		g.GeoM = s.global(w, e)
	})
}

func (s *PropagateSystem) global(w *ecs.World, e ecs.Entity) ebiten.GeoM {
	if m, ok := s.done[e]; ok {
		return m
	}

	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return ebiten.GeoM{}
	}
	m := t.GeoM()

	s.visited[e] = true
	if p, ok := ecs.Get(w, e, component.ParentComponent); ok {
		parent := ecs.Entity(p.Entity)
		if parent != e && !s.visited[parent] && ecs.Has(w, parent, component.TransformComponent) {
			m.Concat(s.global(w, parent))
		}
	}
	delete(s.visited, e)

	s.done[e] = m
	return m
}
