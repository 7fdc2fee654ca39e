package screen

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/entity"
	"github.com/milk9111/jamstarter/menu"
)

func (d *Director) installTitle() {
	d.Screens.OnEnter(Title, func(w *ecs.World) {
		e, err := entity.NewLogo(w, d.pixel())
		scope(w, Title, e, err)
		e, err = entity.NewFadeInOverlay(w, d.pixel(), settings(w).FadeIn)
		scope(w, Title, e, err)
		if d.menus != nil {
			d.menus.Menus.Push(menu.Main)
		}
	})
}

// Play leaves the title for the loading screen.
func (d *Director) Play() {
	d.Screens.Set(Loading)
}

// ToTitle returns to the title from any screen.
func (d *Director) ToTitle() {
	d.Screens.Set(Title)
}
