package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/theme"
)

const overlayLayer = 1 << 20

func newOverlay(w *ecs.World, pixel *ebiten.Image, name string) *builder {
	b := newBuilder(w, name)
	add(b, "transform", component.TransformComponent, component.NewTransform(0, 0))
	add(b, "sprite", component.SpriteComponent, component.Sprite{Image: pixel, Width: common.BaseWidth, Height: common.BaseHeight})
	add(b, "tint", component.TintComponent, component.Tint{A: 1})
	add(b, "theme color", component.ThemeColorComponent, component.ThemeColor{Key: theme.Overlay})
	add(b, "render layer", component.RenderLayerComponent, component.RenderLayer{Index: overlayLayer})
	add(b, "screen space", component.ScreenSpaceComponent, component.ScreenSpace{})
	add(b, "overlay tag", component.OverlayTagComponent, component.OverlayTag{})
	return b
}

// NewFadeInOverlay covers the screen and fades it clear over d seconds.
func NewFadeInOverlay(w *ecs.World, pixel *ebiten.Image, d float64) (ecs.Entity, error) {
	b := newOverlay(w, pixel, "fade in")
	add(b, "fade", component.FadeInComponent, component.NewFadeIn(d))
	return b.done()
}

// NewFadeOutOverlay darkens the screen over d seconds, then calls then once.
func NewFadeOutOverlay(w *ecs.World, pixel *ebiten.Image, d float64, then func()) (ecs.Entity, error) {
	return newFadeOut(w, pixel, component.NewFadeOut(d, then))
}

// NewCoverOverlay is a fade out that keeps covering the screen after then
// runs, until the caller despawns it.
func NewCoverOverlay(w *ecs.World, pixel *ebiten.Image, d float64, then func()) (ecs.Entity, error) {
	f := component.NewFadeOut(d, then)
	f.Hold = true
	return newFadeOut(w, pixel, f)
}

func newFadeOut(w *ecs.World, pixel *ebiten.Image, f component.FadeOut) (ecs.Entity, error) {
	b := newOverlay(w, pixel, "fade out")
	add(b, "fade", component.FadeOutComponent, f)
	return b.done()
}
