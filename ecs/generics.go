package ecs

import (
	"reflect"

	"github.com/milk9111/jamstarter/ecs/component"
)

// Add stores a copy of value as e's component. Re-adding overwrites the
// existing value in place, so pointers returned by Get stay valid. Either
// way the component is stamped as changed at the current tick.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}

	store := w.store(handle.ID())
	if existing, ok := store.Get(e.id()).(*T); ok {
		*existing = value
		store.Stamp(e.id(), w.tick)
		return nil
	}

	v := value
	store.Set(e.id(), &v, w.tick)
	for _, req := range w.requires[handle.ID()] {
		if !w.lookup(req.target).Has(e.id()) {
			req.insert(w, e)
		}
	}
	return nil
}

// Remove deletes e's component, reporting whether one was present.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.lookup(handle.ID()).Remove(e.id())
}

// Has reports whether e holds the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle)
}

// Get returns a pointer to e's component. Writes through the pointer are not
// change-stamped; call MarkChanged or Add when other systems must notice.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.lookup(handle.ID()).Get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// MarkChanged stamps e's component with the current tick.
func MarkChanged[T any](w *World, e Entity, handle component.ComponentHandle[T]) {
	if !w.IsAlive(e) {
		return
	}
	w.lookup(handle.ID()).Stamp(e.id(), w.tick)
}

// ChangedSince reports whether e's component was added or marked changed
// after tick.
func ChangedSince[T any](w *World, e Entity, handle component.ComponentHandle[T], tick uint64) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.lookup(handle.ID()).Tick(e.id()) > tick
}

// ForEach visits every live entity holding the component. Entities may be
// destroyed or components removed from within fn.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	store := w.lookup(handle.ID())
	for _, id := range store.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		v, ok := store.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEachChanged visits entities whose component changed after since.
func ForEachChanged[T any](w *World, handle component.ComponentHandle[T], since uint64, fn func(Entity, *T)) {
	store := w.lookup(handle.ID())
	ForEach(w, handle, func(e Entity, v *T) {
		if store.Tick(e.id()) > since {
			fn(e, v)
		}
	})
}

// ForEach2 visits entities holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa, sb := w.lookup(ha.ID()), w.lookup(hb.ID())
	for _, id := range intersect(sa, sb) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities holding all three components.
func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.lookup(ha.ID()), w.lookup(hb.ID()), w.lookup(hc.ID())
	for _, id := range intersect(sa, sb, sc) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

// Require declares that adding a component of kind a inserts ctor() as kind
// b when e does not already have one.
func Require[A, B any](w *World, a component.ComponentHandle[A], b component.ComponentHandle[B], ctor func() B) {
	if w == nil || ctor == nil {
		return
	}
	w.requires[a.ID()] = append(w.requires[a.ID()], requirement{
		target: b.ID(),
		insert: func(w *World, e Entity) {
			_ = Add(w, e, b, ctor())
		},
	})
}

// InsertResource stores r as the world's single T resource.
func InsertResource[T any](w *World, r *T) {
	if w == nil || r == nil {
		return
	}
	w.resources[reflect.TypeFor[T]()] = r
}

// Resource fetches the world's T resource.
func Resource[T any](w *World) (*T, bool) {
	if w == nil {
		return nil, false
	}
	r, ok := w.resources[reflect.TypeFor[T]()].(*T)
	return r, ok
}

// RemoveResource drops the world's T resource.
func RemoveResource[T any](w *World) {
	if w == nil {
		return
	}
	delete(w.resources, reflect.TypeFor[T]())
}
