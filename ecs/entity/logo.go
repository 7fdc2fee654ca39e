package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/prefabs"
)

// NewLogo spawns the splash logo with its slide-in and bob animations.
func NewLogo(w *ecs.World, pixel *ebiten.Image) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.LogoSpec]("logo.yaml")
	if err != nil {
		return 0, err
	}

	b := newBuilder(w, "logo")
	add(b, "transform", component.TransformComponent, transformFromSpec(spec.Transform))
	add(b, "sprite", component.SpriteComponent, spriteFromSpec(pixel, spec.Sprite))
	add(b, "tint", component.TintComponent, component.White)
	add(b, "theme color", component.ThemeColorComponent, colorFromSpec(spec.Color))
	add(b, "render layer", component.RenderLayerComponent, component.RenderLayer{Index: spec.RenderLayer.Index})
	add(b, "screen space", component.ScreenSpaceComponent, component.ScreenSpace{})
	if spec.Bob.Period > 0 {
		add(b, "bob", component.BobComponent, component.Bob{Amplitude: spec.Bob.Amplitude, Period: spec.Bob.Period})
	}
	if spec.Slide.Duration > 0 {
		add(b, "slide", component.SlideComponent, component.Slide{FromX: spec.Slide.FromX, FromY: spec.Slide.FromY, Duration: spec.Slide.Duration})
	}
	return b.done()
}
