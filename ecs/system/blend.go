package system

import (
	"math"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BlendSystem applies an animation component A on top of the live value C.
// It runs after Save, so the contribution lasts one frame.
type BlendSystem[C, A any] struct {
	live  component.ComponentHandle[C]
	anim  component.ComponentHandle[A]
	apply func(dt float64, live *C, anim *A)
}

func NewBlendSystem[C, A any](live component.ComponentHandle[C], anim component.ComponentHandle[A], apply func(dt float64, live *C, anim *A)) *BlendSystem[C, A] {
	return &BlendSystem[C, A]{live: live, anim: anim, apply: apply}
}

func (s *BlendSystem[C, A]) Update(w *ecs.World) {
	if s == nil || w == nil || s.apply == nil {
		return
	}

	dt := ecs.Delta(w)
	ecs.ForEach2(w, s.anim, s.live, func(_ ecs.Entity, a *A, v *C) {
		s.apply(dt, v, a)
	})
}

func NewOffsetSystem() *BlendSystem[component.Transform, component.Offset] {
	return NewBlendSystem(component.TransformComponent, component.OffsetComponent, ApplyOffset)
}

// ApplyOffset adds translation and rotation and multiplies scale.
func ApplyOffset(_ float64, t *component.Transform, o *component.Offset) {
	t.Translate(o.X, o.Y)
	t.Rotate(o.Rotation)
	t.Scale(unit(o.ScaleX), unit(o.ScaleY))
}

func unit(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func NewTintOffsetSystem() *BlendSystem[component.Tint, component.TintOffset] {
	return NewBlendSystem(component.TintComponent, component.TintOffsetComponent, func(_ float64, c *component.Tint, o *component.TintOffset) {
		c.Mul(o.Tint)
	})
}

func NewSlideSystem() *BlendSystem[component.Transform, component.Slide] {
	return NewBlendSystem(component.TransformComponent, component.SlideComponent, applySlide)
}

func applySlide(dt float64, t *component.Transform, s *component.Slide) {
	if s.Tween == nil && !s.Done {
		if s.Duration <= 0 {
			s.Done = true
			s.Value = 0
		} else {
			fn := s.Ease
			if fn == nil {
				fn = ease.OutCubic
			}
			s.Tween = gween.New(1, 0, float32(s.Duration), fn)
			s.Value = 1
		}
	}
	if !s.Done {
		v, done := s.Tween.Update(float32(dt))
		s.Value = float64(v)
		s.Done = done
	}
	t.Translate(s.FromX*s.Value, s.FromY*s.Value)
}

func NewBobSystem() *BlendSystem[component.Transform, component.Bob] {
	return NewBlendSystem(component.TransformComponent, component.BobComponent, func(dt float64, t *component.Transform, b *component.Bob) {
		b.Elapsed += dt
		if b.Period <= 0 {
			return
		}
		t.Translate(0, b.Amplitude*math.Sin(2*math.Pi*b.Elapsed/b.Period))
	})
}
