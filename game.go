package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/jamstarter/assets"
	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/config"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/system"
	"github.com/milk9111/jamstarter/menu"
	"github.com/milk9111/jamstarter/screen"
	"github.com/milk9111/jamstarter/state"
	"github.com/milk9111/jamstarter/theme"
)

const appName = "jamstarter"

type Game struct {
	frames int
	debug  bool
	quit   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	cfg      *config.Config
	cfgPath  string
	watcher  *config.Watcher
	palette  *theme.Palette
	settings *config.SettingsStore

	director *screen.Director
	menus    *menu.Controller
}

// NewGame wires the world, the state layers and every system. Any ordering
// or nesting mistake is returned here, before the first frame.
func NewGame(cfg *config.Config, cfgPath string, debug bool) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     debug,
		world:     ecs.NewWorld(),
		scheduler: ecs.NewScheduler(),
		render:    system.NewRenderSystem(),
		cfg:       cfg,
		cfgPath:   cfgPath,
		palette:   palette,
		settings:  config.OpenSettings(appName, config.SettingsFor(cfg)),
	}

	clock := ecs.NewTime()
	ecs.InsertResource(g.world, clock)
	ecs.InsertResource(g.world, cfg)
	ecs.InsertResource(g.world, palette)

	library := assets.NewLibrary(cfg.Screens.LoadingSteps)
	library.Pixel = assets.NewPixel()

	g.menus = menu.NewController(cfg.Window.Title, palette, g.settings, menu.Actions{
		Play:  func() { g.director.Play() },
		Title: func() { g.director.ToTitle() },
		Quit:  func() { g.quit = true },
		Apply: applySettings,
	})
	g.director = screen.NewDirector(g.menus, library)

	layers := state.NewLayers()
	layers.Add(g.director.Screens)
	if err := g.menus.Nest(layers, g.director.Screens); err != nil {
		return nil, err
	}
	g.menus.Pause.OnEnter(menu.On, func(*ecs.World) { clock.Scale = 0 })
	g.menus.Pause.OnExit(menu.On, func(*ecs.World) { clock.Scale = 1 })

	s := g.scheduler
	s.Add(ecs.PhasePreUpdate, g.menus)
	s.Add(ecs.PhaseStateTransition, layers)
	if debug {
		s.Add(ecs.PhaseUpdate, system.NewTransitionLogSystem())
	}
	s.Add(ecs.PhaseUpdate, system.NewThemeSystem(), ecs.Label("theme"))
	system.InstallAnimation(g.world, s)
	g.director.Install(s, cfg)

	if err := s.Build(); err != nil {
		return nil, err
	}

	applySettings(g.settings.Get())
	g.director.Start()
	return g, nil
}

// Watch hot-reloads the config file whenever it is written.
func (g *Game) Watch() error {
	if g.cfgPath == "" {
		return fmt.Errorf("watch: no config file given")
	}
	w, err := config.Watch(g.cfgPath)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("Config: watch error: %v", err)
	default:
	}
	if len(g.watcher.Drain()) == 0 {
		return
	}

	next, err := config.Load(g.cfgPath)
	if err != nil {
		log.Printf("Config: reload failed, keeping previous config: %v", err)
		return
	}
	*g.cfg = *next
	if err := g.cfg.ApplyTheme(g.palette); err != nil {
		log.Printf("Config: theme: %v", err)
	}
	if physics := g.director.Physics(); physics != nil {
		physics.SetGravity(g.cfg.Physics.Gravity)
	}
	log.Printf("Config: reloaded %s", g.cfgPath)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.reload()

	if clock, ok := ecs.Resource[ecs.Time](g.world); ok {
		clock.Advance(1 / float64(ebiten.TPS()))
	}
	return g.scheduler.Run(g.world)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.MustColor(theme.Background))
	g.render.Draw(g.world, screen)
	g.menus.Draw(screen)

	if g.debug || g.settings.Get().ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func applySettings(s config.Settings) {
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetVsyncEnabled(s.VSync)
}
