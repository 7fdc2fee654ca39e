package system

import (
	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/tanema/gween/ease"
)

// FadeSystem ticks FadeIn and FadeOut overlays and multiplies their Tint
// alpha. Finished overlays are despawned on the late command queue, after
// every blend of the frame has run, unless the FadeOut is held.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (s *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.Delta(w)
	late := w.Commands().Late()

	ecs.ForEach2(w, component.FadeInComponent, component.TintComponent, func(e ecs.Entity, f *component.FadeIn, tint *component.Tint) {
		f.Remaining -= dt
		tint.MulAlpha(float32(1 - FadeProgress(f.Duration, f.Remaining, f.Ease)))
		if f.Remaining <= 0 {
			late.Despawn(e)
		}
	})

	ecs.ForEach2(w, component.FadeOutComponent, component.TintComponent, func(e ecs.Entity, f *component.FadeOut, tint *component.Tint) {
		f.Remaining -= dt
		tint.MulAlpha(float32(FadeProgress(f.Duration, f.Remaining, f.Ease)))
		if f.Remaining > 0 {
			return
		}
		if !f.Fired {
			f.Fired = true
			if f.Then != nil {
				f.Then()
			}
		}
		if !f.Hold {
			late.Despawn(e)
		}
	})
}

// FadeProgress maps a fade's remaining time to eased progress in [0,1]. A
// non-positive duration is already complete.
func FadeProgress(duration, remaining float64, fn ease.TweenFunc) float64 {
	if duration <= 0 || remaining <= 0 {
		return 1
	}
	p := common.Clamp(1-remaining/duration, 0, 1)
	if fn == nil {
		return p
	}
	return common.Clamp(float64(fn(float32(p), 0, 1, 1)), 0, 1)
}
