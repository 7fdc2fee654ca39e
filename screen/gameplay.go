package screen

import (
	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/config"
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/entity"
	"github.com/milk9111/jamstarter/ecs/system"
	"github.com/milk9111/jamstarter/state"
	"github.com/milk9111/jamstarter/theme"
)

const (
	groundHeight = 40
	wallWidth    = 20
	crateRows    = 4
)

type gameplay struct {
	physics *system.PhysicsSystem
}

func (d *Director) installGameplay(s *ecs.Scheduler, cfg *config.Config) {
	d.game = &gameplay{physics: system.NewPhysicsSystem(cfg.Physics.Gravity, cfg.Physics.Iterations)}

	d.Screens.OnEnter(Gameplay, func(w *ecs.World) {
		if c, ok := ecs.Resource[config.Config](w); ok {
			d.game.physics.SetGravity(c.Physics.Gravity)
		}
		d.spawnLevel(w)
	})

	inGame := state.In(d.Screens, Gameplay)
	running := func(w *ecs.World) bool {
		return inGame(w) && (d.menus == nil || d.menus.Pause.Empty())
	}

	s.Add(ecs.PhasePreUpdate, system.NewInputSystem(), ecs.RunIf(running))
	s.Add(ecs.PhasePreUpdate, ecs.SystemFunc(d.updatePause), ecs.RunIf(inGame))
	s.Add(ecs.PhaseUpdate, system.NewPlayerControllerSystem(), ecs.RunIf(running), ecs.Label("gameplay.control"))
	s.Add(ecs.PhaseUpdate, d.game.physics, ecs.RunIf(inGame), ecs.After("gameplay.control"))
}

// Physics exposes the gameplay physics world.
func (d *Director) Physics() *system.PhysicsSystem {
	if d.game == nil {
		return nil
	}
	return d.game.physics
}

// updatePause opens the pause menu on Escape while no menu is showing.
func (d *Director) updatePause(w *ecs.World) {
	if d.menus == nil || !d.menus.Menus.Empty() || d.menus.Menus.Pending() {
		return
	}
	if d.pausePressed() {
		d.menus.OpenPause()
	}
}

func (d *Director) spawnLevel(w *ecs.World) {
	px := d.pixel()
	floorY := float64(common.BaseHeight - groundHeight/2)

	geometry := []entity.Box{
		{X: common.BaseWidth / 2, Y: floorY, Width: common.BaseWidth, Height: groundHeight, Color: theme.Surface, Static: true},
		{X: wallWidth / 2, Y: common.BaseHeight / 2, Width: wallWidth, Height: common.BaseHeight, Color: theme.Surface, Static: true},
		{X: common.BaseWidth - wallWidth/2, Y: common.BaseHeight / 2, Width: wallWidth, Height: common.BaseHeight, Color: theme.Surface, Static: true},
	}
	for _, box := range geometry {
		e, err := entity.NewBox(w, px, box)
		scope(w, Gameplay, e, err)
	}

	e, err := entity.NewPlayer(w, px)
	scope(w, Gameplay, e, err)

	// a pyramid of crates right of the spawn point
	i := 0
	for row := 0; row < crateRows; row++ {
		for col := 0; col < crateRows-row; col++ {
			x := 380 + float64(col)*22 + float64(row)*11
			y := floorY - groundHeight/2 - 10 - float64(row)*21
			img := px
			if d.library != nil {
				img = d.library.Crate(i)
			}
			e, err := entity.NewCrate(w, img, x, y)
			scope(w, Gameplay, e, err)
			i++
		}
	}

	e, err = entity.NewFadeInOverlay(w, px, settings(w).FadeIn)
	scope(w, Gameplay, e, err)
}
