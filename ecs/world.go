package ecs

import (
	"reflect"

	"github.com/milk9111/jamstarter/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f != nil {
		f(w)
	}
}

type requirement struct {
	target component.ComponentID
	insert func(w *World, e Entity)
}

// World owns entities, component stores and resources. It is not safe for
// concurrent use; the scheduler runs systems one at a time.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	resources map[reflect.Type]any
	requires  map[component.ComponentID][]requirement
	events    EventQueue
	commands  Commands
	tick      uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		resources: make(map[reflect.Type]any),
		requires:  make(map[component.ComponentID][]requirement),
		tick:      1,
	}
	w.commands.world = w
	w.commands.late = &Commands{world: w}
	return w
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Tick is the current change-detection tick. The scheduler advances it once
// per frame.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// AdvanceTick moves the change-detection clock forward and returns the new
// tick.
func (w *World) AdvanceTick() uint64 {
	w.tick++
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Commands returns the deferred command queue flushed at the end of the
// running phase.
func (w *World) Commands() *Commands {
	if w == nil {
		return nil
	}
	return &w.commands
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) lookup(id component.ComponentID) *SparseSet {
	if w == nil {
		return nil
	}
	return w.stores[id]
}

// HasComponent reports whether e holds a component of the given key.
func (w *World) HasComponent(e Entity, key component.Key) bool {
	if !w.IsAlive(e) || key == nil {
		return false
	}
	return w.lookup(key.ID()).Has(e.id())
}

// First returns the first live entity holding the given component.
func (w *World) First(key component.Key) (Entity, bool) {
	store := w.lookup(key.ID())
	if store == nil {
		return 0, false
	}
	for _, id := range store.denseEntities {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Query returns entities holding every given component.
func (w *World) Query(keys ...component.Key) []Entity {
	if w == nil || len(keys) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(keys))
	for _, k := range keys {
		s := w.lookup(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}

	ids := intersect(stores...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity destroys e in w.
func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

// IsAlive reports whether e is alive in w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities lists the live entities of w.
func Entities(w *World) []Entity {
	return w.Entities()
}
