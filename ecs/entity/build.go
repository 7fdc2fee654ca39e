// Package entity spawns the prefab-backed entities used by the screens.
// Sprites are solid placeholders: a 1x1 white pixel stretched to the
// prefab size and colored through the theme palette.
package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/prefabs"
)

type builder struct {
	w    *ecs.World
	e    ecs.Entity
	name string
	err  error
}

func newBuilder(w *ecs.World, name string) *builder {
	return &builder{w: w, e: w.CreateEntity(), name: name}
}

func add[T any](b *builder, what string, h component.ComponentHandle[T], v T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, h, v); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.name, what, err)
	}
}

// done returns the entity, destroying it if any component failed.
func (b *builder) done() (ecs.Entity, error) {
	if b.err != nil {
		b.w.DestroyEntity(b.e)
		return 0, b.err
	}
	return b.e, nil
}

func transformFromSpec(s prefabs.TransformSpec) component.Transform {
	t := component.Transform{X: s.X, Y: s.Y, ScaleX: s.ScaleX, ScaleY: s.ScaleY, Rotation: s.Rotation}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

func spriteFromSpec(pixel *ebiten.Image, s prefabs.SpriteSpec) component.Sprite {
	sp := component.Sprite{Image: pixel, Width: s.Width, Height: s.Height}
	if !s.TopLeft {
		sp.OriginX = s.Width / 2
		sp.OriginY = s.Height / 2
	}
	return sp
}

func colorFromSpec(s prefabs.ColorSpec) component.ThemeColor {
	return component.ThemeColor{Key: s.Key, Alpha: s.Alpha}
}

func bodyFromSpec(s prefabs.ColliderSpec) component.PhysicsBody {
	return component.PhysicsBody{
		Width:      s.Width,
		Height:     s.Height,
		Mass:       s.Mass,
		Friction:   s.Friction,
		Elasticity: s.Elasticity,
		Static:     s.Static,
	}
}

// Box is a plain rectangle spec for level geometry and UI bars.
type Box struct {
	X, Y          float64
	Width, Height float64
	Color         string
	Layer         int
	TopLeft       bool
	ScreenSpace   bool
	Static        bool
}

// NewBox spawns a colored rectangle. Static boxes also get a static
// collider of the same size.
func NewBox(w *ecs.World, pixel *ebiten.Image, box Box) (ecs.Entity, error) {
	b := newBuilder(w, "box")
	add(b, "transform", component.TransformComponent, component.NewTransform(box.X, box.Y))
	add(b, "sprite", component.SpriteComponent, spriteFromSpec(pixel, prefabs.SpriteSpec{Width: box.Width, Height: box.Height, TopLeft: box.TopLeft}))
	add(b, "tint", component.TintComponent, component.White)
	add(b, "theme color", component.ThemeColorComponent, component.ThemeColor{Key: box.Color})
	add(b, "render layer", component.RenderLayerComponent, component.RenderLayer{Index: box.Layer})
	if box.ScreenSpace {
		add(b, "screen space", component.ScreenSpaceComponent, component.ScreenSpace{})
	}
	if box.Static {
		add(b, "physics body", component.PhysicsBodyComponent, component.PhysicsBody{Width: box.Width, Height: box.Height, Friction: 0.9, Static: true})
	}
	return b.done()
}
