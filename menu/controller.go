package menu

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jamstarter/config"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/state"
	"github.com/milk9111/jamstarter/theme"
)

// Controller owns the menu and pause stacks and keeps one ebitenui UI in
// step with the top menu.
type Controller struct {
	Menus *state.Stack[Menu]
	Pause *state.Stack[Paused]

	palette  *theme.Palette
	settings *config.SettingsStore
	actions  Actions
	title    string

	ui      *ebitenui.UI
	top     Menu
	open    bool
	dirty   bool
	builtAt uint64
	build   func(c *Controller, m Menu) *ebitenui.UI
}

func NewController(title string, palette *theme.Palette, settings *config.SettingsStore, actions Actions) *Controller {
	if settings == nil {
		settings = config.NewSettingsStore(nil, config.Settings{})
	}
	c := &Controller{
		Menus:    state.NewStack[Menu]("menu"),
		Pause:    state.NewStack[Paused]("pause"),
		palette:  palette,
		settings: settings,
		actions:  actions,
		title:    title,
		build:    newUI,
	}
	c.Menus.OnChange(func(_ *ecs.World, top Menu, ok bool) {
		c.top, c.open = top, ok
		c.rebuild()
	})
	return c
}

// Nest registers the menu layer under screens and the pause layer under
// the menus: leaving a screen closes every menu, and closing the last menu
// unpauses.
func (c *Controller) Nest(layers *state.Layers, screens state.Layer) error {
	if err := layers.Nest(screens, c.Menus, state.ClearOnChange); err != nil {
		return err
	}
	return layers.Nest(c.Menus, c.Pause, state.ClearOnEmpty)
}

// OpenPause pauses the game and shows the pause menu.
func (c *Controller) OpenPause() {
	c.Pause.Push(On)
	c.Menus.Push(Pause)
}

// Back closes the top menu. The main menu is the root of the title screen
// and stays open.
func (c *Controller) Back() {
	top, ok := c.Menus.Top()
	if !ok || top == Main {
		return
	}
	c.Menus.Pop()
}

func (c *Controller) Open() bool { return c.open }

func (c *Controller) Update(w *ecs.World) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.Back()
	}
	if c.ui != nil {
		c.ui.Update()
	}
	if c.dirty || (c.open && c.palette.Revision() != c.builtAt) {
		c.rebuild()
	}
}

func (c *Controller) Draw(screen *ebiten.Image) {
	if c.ui != nil {
		c.ui.Draw(screen)
	}
}

func (c *Controller) rebuild() {
	c.dirty = false
	c.builtAt = c.palette.Revision()
	if !c.open {
		c.ui = nil
		return
	}
	c.ui = c.build(c, c.top)
}
