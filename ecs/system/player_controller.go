package system

import (
	"math"

	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

const groundedEpsilon = 1.0

// PlayerControllerSystem drives the player body from Input and keeps the
// sprite facing the direction of travel.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent, component.InputComponent, component.PhysicsBodyComponent, func(e ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}

		vel := bodyComp.Body.Velocity()
		vel.X = input.MoveX * player.MoveSpeed
		if input.JumpPressed && math.Abs(vel.Y) < groundedEpsilon {
			vel.Y = -player.JumpSpeed
		}
		bodyComp.Body.SetVelocityVector(vel)

		if facing, ok := ecs.Get(w, e, component.FacingComponent); ok && input.MoveX != 0 {
			facing.Left = input.MoveX < 0
		}
	})
}
