package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws Image stretched to Width x Height (image size when zero).
// The origin is in stretched units.
type Sprite struct {
	Image   *ebiten.Image
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
