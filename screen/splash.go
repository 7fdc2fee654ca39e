package screen

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/entity"
	"github.com/milk9111/jamstarter/state"
)

type splash struct {
	remaining float64
	leaving   bool
}

func (d *Director) installSplash(s *ecs.Scheduler) {
	d.Screens.OnEnter(Splash, func(w *ecs.World) {
		cfg := settings(w)
		d.splash = splash{remaining: cfg.SplashDuration}
		e, err := entity.NewLogo(w, d.pixel())
		scope(w, Splash, e, err)
		e, err = entity.NewFadeInOverlay(w, d.pixel(), cfg.FadeIn)
		scope(w, Splash, e, err)
	})
	s.Add(ecs.PhaseUpdate, ecs.SystemFunc(d.updateSplash), ecs.RunIf(state.In(d.Screens, Splash)))
}

// updateSplash counts down the splash, or cuts it short on any input, then
// fades out to the title.
func (d *Director) updateSplash(w *ecs.World) {
	if d.splash.leaving {
		return
	}
	d.splash.remaining -= ecs.Delta(w)
	if d.splash.remaining > 0 && !d.skipPressed() {
		return
	}
	d.splash.leaving = true
	d.fadeTo(w, Splash, Title)
}

// fadeTo darkens the screen and switches to next once it is covered. The
// cover is scoped to from, so it goes away with the screen it hides.
func (d *Director) fadeTo(w *ecs.World, from, next Screen) {
	e, err := entity.NewCoverOverlay(w, d.pixel(), settings(w).FadeOut, func() {
		d.Screens.Set(next)
	})
	scope(w, from, e, err)
}
