package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/prefabs"
)

func NewPlayer(w *ecs.World, pixel *ebiten.Image) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		return 0, err
	}

	b := newBuilder(w, "player")
	add(b, "player", component.PlayerComponent, component.Player{MoveSpeed: spec.MoveSpeed, JumpSpeed: spec.JumpSpeed})
	add(b, "input", component.InputComponent, component.Input{})
	add(b, "transform", component.TransformComponent, transformFromSpec(spec.Transform))
	add(b, "sprite", component.SpriteComponent, spriteFromSpec(pixel, spec.Sprite))
	add(b, "tint", component.TintComponent, component.White)
	add(b, "theme color", component.ThemeColorComponent, colorFromSpec(spec.Color))
	add(b, "render layer", component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
	add(b, "physics body", component.PhysicsBodyComponent, bodyFromSpec(spec.Collider))
	add(b, "facing", component.FacingComponent, component.Facing{})
	add(b, "pixel snap", component.PixelSnapComponent, component.PixelSnap{})
	return b.done()
}
