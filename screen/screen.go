// Package screen drives the top state layer: splash, title, loading and
// gameplay. Each screen spawns its entities on enter and tags them with
// Scoped so they are despawned on exit.
package screen

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jamstarter/assets"
	"github.com/milk9111/jamstarter/config"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
	"github.com/milk9111/jamstarter/menu"
	"github.com/milk9111/jamstarter/state"
)

type Screen int

const (
	Splash Screen = iota + 1
	Title
	Loading
	Gameplay
)

func (s Screen) String() string {
	switch s {
	case Splash:
		return "Splash"
	case Title:
		return "Title"
	case Loading:
		return "Loading"
	case Gameplay:
		return "Gameplay"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

var ScopedComponent = component.NewComponent[state.Scoped[Screen]]()

// Director owns the screen stack and the per-screen systems.
type Director struct {
	Screens *state.Stack[Screen]

	menus   *menu.Controller
	library *assets.Library

	splash  splash
	loading loading
	game    *gameplay

	// input probes
	skipPressed  func() bool
	pausePressed func() bool
}

func NewDirector(menus *menu.Controller, library *assets.Library) *Director {
	return &Director{
		Screens:      state.NewStack[Screen]("screen"),
		menus:        menus,
		library:      library,
		skipPressed:  anyJustPressed,
		pausePressed: func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) },
	}
}

// Install declares the screen hooks and schedules the screen systems. The
// physics world is sized from cfg.
func (d *Director) Install(s *ecs.Scheduler, cfg *config.Config) {
	d.Screens.DespawnScoped(ScopedComponent)

	d.installSplash(s)
	d.installTitle()
	d.installLoading(s)
	d.installGameplay(s, cfg)
}

// Start queues the first screen.
func (d *Director) Start() {
	d.Screens.Set(Splash)
}

func (d *Director) pixel() *ebiten.Image {
	if d.library == nil {
		return nil
	}
	return d.library.Pixel
}

// scope ties e to screen s. A spawn error is logged and the screen carries
// on without that entity.
func scope(w *ecs.World, s Screen, e ecs.Entity, err error) ecs.Entity {
	if err != nil {
		log.Printf("Screen: %s: %v", s, err)
		return 0
	}
	if err := ecs.Add(w, e, ScopedComponent, state.Scoped[Screen]{State: s}); err != nil {
		log.Printf("Screen: %s: scope: %v", s, err)
	}
	return e
}

func settings(w *ecs.World) config.Screens {
	if cfg, ok := ecs.Resource[config.Config](w); ok {
		return cfg.Screens
	}
	return config.Screens{LoadingSteps: 1}
}

func anyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
