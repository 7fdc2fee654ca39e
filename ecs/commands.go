package ecs

import "github.com/milk9111/jamstarter/ecs/component"

// Command is a deferred world mutation.
type Command func(w *World)

// Commands queues structural changes (spawn, insert, despawn) so systems can
// request them while iterating. The scheduler applies the default queue at
// the end of each phase and the late queue after the final phase.
type Commands struct {
	world *World
	queue []Command
	late  *Commands
}

// Run queues an arbitrary command.
func (c *Commands) Run(cmd Command) {
	if c == nil || cmd == nil {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Spawn allocates an entity now and queues build to populate it. The handle
// is alive immediately but holds no components until the queue is applied.
func (c *Commands) Spawn(build func(w *World, e Entity)) Entity {
	if c == nil || c.world == nil {
		return 0
	}
	e := c.world.CreateEntity()
	if build != nil {
		c.Run(func(w *World) {
			if w.IsAlive(e) {
				build(w, e)
			}
		})
	}
	return e
}

// Despawn queues destruction of e. Despawning an already dead entity is a
// no-op.
func (c *Commands) Despawn(e Entity) {
	c.Run(func(w *World) {
		w.DestroyEntity(e)
	})
}

// Late returns the queue applied after the last phase of the frame.
func (c *Commands) Late() *Commands {
	if c == nil {
		return nil
	}
	if c.late == nil {
		return c
	}
	return c.late
}

// Len reports the number of queued commands.
func (c *Commands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.queue)
}

// Apply runs queued commands in submission order. Commands queued while
// applying run in the same call.
func (c *Commands) Apply() {
	if c == nil || c.world == nil {
		return
	}
	for len(c.queue) > 0 {
		batch := c.queue
		c.queue = nil
		for _, cmd := range batch {
			cmd(c.world)
		}
	}
}

// Insert queues adding value as e's component.
func Insert[T any](c *Commands, e Entity, handle component.ComponentHandle[T], value T) {
	c.Run(func(w *World) {
		_ = Add(w, e, handle, value)
	})
}
