package state

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// In holds while v is the top of s.
func In[S comparable](s *Stack[S], v S) ecs.Condition {
	return func(*ecs.World) bool { return s.Is(v) }
}

// Within holds while v is active at any depth of s.
func Within[S comparable](s *Stack[S], v S) ecs.Condition {
	return func(*ecs.World) bool { return s.Contains(v) }
}

// Idle holds while s has no active state.
func Idle[S comparable](s *Stack[S]) ecs.Condition {
	return func(*ecs.World) bool { return s.Empty() }
}

// Scoped ties an entity's lifetime to a state: it is despawned when State
// exits.
type Scoped[S comparable] struct {
	State S
}

// DespawnScoped registers an exit observer that queues despawns for every
// entity whose Scoped component names the exiting state. Handles are
// captured at exit time, so entities spawned by a later enter of the same
// state survive.
func (s *Stack[S]) DespawnScoped(handle component.ComponentHandle[Scoped[S]]) {
	s.OnTransition(func(w *ecs.World, t Transition[S]) {
		if t.Change != Exit {
			return
		}
		cmds := w.Commands()
		ecs.ForEach(w, handle, func(e ecs.Entity, sc *Scoped[S]) {
			if sc.State == t.State {
				cmds.Despawn(e)
			}
		})
	})
}
