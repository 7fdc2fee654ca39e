// Package menu holds the menu stack states and the ebitenui screens drawn
// for them.
package menu

import (
	"fmt"

	"github.com/milk9111/jamstarter/config"
)

type Menu int

const (
	Main Menu = iota + 1
	Pause
	Settings
)

func (m Menu) String() string {
	switch m {
	case Main:
		return "Main"
	case Pause:
		return "Pause"
	case Settings:
		return "Settings"
	}
	return fmt.Sprintf("Menu(%d)", int(m))
}

// Paused is the single state of the pause layer. While it is active the
// game clock is stopped.
type Paused int

const On Paused = 1

func (p Paused) String() string { return "Paused" }

// Actions are the effects of menu buttons outside the menu stack.
type Actions struct {
	Play  func()
	Title func()
	Quit  func()
	// Apply pushes changed settings to the window.
	Apply func(config.Settings)
}

// Item is one button.
type Item struct {
	Label string
	Do    func()
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

// Heading is the title drawn above a menu's buttons.
func (c *Controller) Heading(m Menu) string {
	switch m {
	case Pause:
		return "Paused"
	case Settings:
		return "Settings"
	}
	return c.title
}

// Items lists the buttons of m in display order.
func (c *Controller) Items(m Menu) []Item {
	switch m {
	case Main:
		return []Item{
			{Label: "Play", Do: call(c.actions.Play)},
			{Label: "Settings", Do: func() { c.Menus.Push(Settings) }},
			{Label: "Quit", Do: call(c.actions.Quit)},
		}
	case Pause:
		return []Item{
			{Label: "Resume", Do: func() { c.Menus.Pop() }},
			{Label: "Settings", Do: func() { c.Menus.Push(Settings) }},
			{Label: "Quit to Title", Do: call(c.actions.Title)},
		}
	case Settings:
		s := c.settings.Get()
		return []Item{
			{Label: "Fullscreen: " + onOff(s.Fullscreen), Do: c.toggle(func(s *config.Settings) { s.Fullscreen = !s.Fullscreen })},
			{Label: "VSync: " + onOff(s.VSync), Do: c.toggle(func(s *config.Settings) { s.VSync = !s.VSync })},
			{Label: "Show FPS: " + onOff(s.ShowFPS), Do: c.toggle(func(s *config.Settings) { s.ShowFPS = !s.ShowFPS })},
			{Label: "Back", Do: func() { c.Menus.Pop() }},
		}
	}
	return nil
}

func (c *Controller) toggle(fn func(*config.Settings)) func() {
	return func() {
		s := c.settings.Update(fn)
		if c.actions.Apply != nil {
			c.actions.Apply(s)
		}
		c.dirty = true
	}
}
