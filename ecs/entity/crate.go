package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/prefabs"
)

// NewCrate spawns a dynamic crate centered at x, y.
func NewCrate(w *ecs.World, pixel *ebiten.Image, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.CrateSpec]("crate.yaml")
	if err != nil {
		return 0, err
	}

	b := newBuilder(w, "crate")
	add(b, "tag", component.CrateTagComponent, component.CrateTag{})
	add(b, "transform", component.TransformComponent, component.NewTransform(x, y))
	add(b, "sprite", component.SpriteComponent, spriteFromSpec(pixel, spec.Sprite))
	add(b, "tint", component.TintComponent, component.White)
	add(b, "theme color", component.ThemeColorComponent, colorFromSpec(spec.Color))
	add(b, "render layer", component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
	add(b, "physics body", component.PhysicsBodyComponent, bodyFromSpec(spec.Collider))
	return b.done()
}
