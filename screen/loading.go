package screen

import (
	"log"

	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/ecs/entity"
	"github.com/milk9111/jamstarter/state"
	"github.com/milk9111/jamstarter/theme"
)

const (
	barWidth  = common.BaseWidth / 2
	barHeight = 12
)

type loading struct {
	bar     ecs.Entity
	leaving bool
}

func (d *Director) installLoading(s *ecs.Scheduler) {
	d.Screens.OnEnter(Loading, func(w *ecs.World) {
		d.loading = loading{}
		x := float64(common.BaseWidth-barWidth) / 2
		y := float64(common.BaseHeight-barHeight) / 2

		e, err := entity.NewBox(w, d.pixel(), entity.Box{X: x, Y: y, Width: barWidth, Height: barHeight, Color: theme.Surface, Layer: 1, TopLeft: true, ScreenSpace: true})
		scope(w, Loading, e, err)

		e, err = entity.NewBox(w, d.pixel(), entity.Box{X: x, Y: y, Width: barWidth, Height: barHeight, Color: theme.Primary, Layer: 2, TopLeft: true, ScreenSpace: true})
		if bar := scope(w, Loading, e, err); bar != 0 {
			ecs.Insert(w.Commands(), bar, component.ProgressComponent, component.Progress{})
			d.loading.bar = bar
		}

		e, err = entity.NewFadeInOverlay(w, d.pixel(), settings(w).FadeIn)
		scope(w, Loading, e, err)
	})
	s.Add(ecs.PhaseUpdate, ecs.SystemFunc(d.updateLoading), ecs.RunIf(state.In(d.Screens, Loading)))
}

// updateLoading builds one asset per frame and stretches the bar to the
// built fraction. A failed step is logged and loading moves on.
func (d *Director) updateLoading(w *ecs.World) {
	if d.loading.leaving {
		return
	}
	lib := d.library
	if lib != nil && !lib.Done() {
		if err := lib.Step(); err != nil {
			log.Printf("Loading: %v", err)
		} else if lib.Done() {
			log.Printf("Loading: built %d crate textures", lib.Total())
		}
	}

	progress := 1.0
	if lib != nil {
		progress = lib.Progress()
	}
	if p, ok := ecs.Get(w, d.loading.bar, component.ProgressComponent); ok {
		p.Value = progress
		if t, ok := ecs.Get(w, d.loading.bar, component.TransformComponent); ok {
			t.ScaleX = common.Clamp(progress, 0, 1)
		}
	}

	if lib == nil || lib.Done() {
		d.loading.leaving = true
		d.fadeTo(w, Loading, Gameplay)
	}
}
