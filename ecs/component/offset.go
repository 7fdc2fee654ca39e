package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Offset is a constant animation contribution. Translation and rotation are
// added; a zero scale component leaves that axis unscaled.
type Offset struct {
	X        float64
	Y        float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

var OffsetComponent = NewComponent[Offset]()

// TintOffset multiplies the entity's Tint.
type TintOffset struct {
	Tint Tint
}

var TintOffsetComponent = NewComponent[TintOffset]()

// Slide eases a translation offset from (FromX, FromY) back to zero. A nil
// Ease means ease.OutCubic.
type Slide struct {
	FromX    float64
	FromY    float64
	Duration float64
	Ease     ease.TweenFunc

	Tween *gween.Tween
	Value float64
	Done  bool
}

var SlideComponent = NewComponent[Slide]()

// Bob is a sinusoidal vertical offset.
type Bob struct {
	Amplitude float64
	Period    float64
	Elapsed   float64
}

var BobComponent = NewComponent[Bob]()
