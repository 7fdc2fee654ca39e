package component

import "github.com/hajimehoshi/ebiten/v2"

// Transform is an entity's local position, scale and rotation (radians).
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// NewTransform returns an unscaled transform at x, y.
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func (t Transform) Clone() Transform { return t }

// Translate adds a translation offset.
func (t *Transform) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Rotate adds a rotation offset.
func (t *Transform) Rotate(r float64) {
	t.Rotation += r
}

// Scale multiplies the scale by a scale offset.
func (t *Transform) Scale(sx, sy float64) {
	t.ScaleX *= sx
	t.ScaleY *= sy
}

// GeoM builds the local matrix: scale, then rotate, then translate.
func (t Transform) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.ScaleX, t.ScaleY)
	if t.Rotation != 0 {
		m.Rotate(t.Rotation)
	}
	m.Translate(t.X, t.Y)
	return m
}

var TransformComponent = NewComponent[Transform]()

// GlobalTransform is the world-space matrix derived from the Transform
// hierarchy. Only the propagation systems write it.
type GlobalTransform struct {
	GeoM ebiten.GeoM
}

// Translation returns the world-space origin of the matrix.
func (g GlobalTransform) Translation() (float64, float64) {
	return g.GeoM.Apply(0, 0)
}

var GlobalTransformComponent = NewComponent[GlobalTransform]()

// Parent attaches an entity's Transform to another entity's GlobalTransform.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
