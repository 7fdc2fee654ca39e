package system

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/theme"
)

// ThemeSystem resolves ThemeColor keys into Tint. Only entities whose
// ThemeColor changed, or all of them after a palette change, are touched.
type ThemeSystem struct {
	lastTick uint64
}

func NewThemeSystem() *ThemeSystem {
	return &ThemeSystem{}
}

func (s *ThemeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	palette, ok := ecs.Resource[theme.Palette](w)
	if !ok {
		return
	}
	rev := palette.Revision()

	ecs.ForEach2(w, component.ThemeColorComponent, component.TintComponent, func(e ecs.Entity, tc *component.ThemeColor, tint *component.Tint) {
		if tc.Revision == rev && !ecs.ChangedSince(w, e, component.ThemeColorComponent, s.lastTick) {
			return
		}
		alpha := tc.Alpha
		if alpha == 0 {
			alpha = 1
		}
		if resolved, ok := palette.Tint(tc.Key, alpha); ok {
			*tint = resolved
		}
		tc.Revision = rev
	})
	s.lastTick = w.Tick()
}
