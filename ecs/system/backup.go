package system

import (
	"github.com/milk9111/jamstarter/ecs"
	"github.com/milk9111/jamstarter/ecs/component"
)

// RestoreSystem puts back the value saved before last frame's animations,
// so blending never sees its own previous output. Entities whose backup is
// empty keep their live value.
type RestoreSystem[C component.Restorable[C]] struct {
	live   component.ComponentHandle[C]
	backup component.ComponentHandle[component.Backup[C]]

	// Resync runs right after restoring when set, for state derived from C
	// that gameplay reads before the propagation phase.
	Resync ecs.System
}

func NewRestoreSystem[C component.Restorable[C]](live component.ComponentHandle[C], backup component.ComponentHandle[component.Backup[C]]) *RestoreSystem[C] {
	return &RestoreSystem[C]{live: live, backup: backup}
}

func (s *RestoreSystem[C]) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, s.backup, s.live, func(_ ecs.Entity, b *component.Backup[C], v *C) {
		if saved, ok := b.Take(); ok {
			*v = saved
		}
	})

	if s.Resync != nil {
		s.Resync.Update(w)
	}
}

// SaveSystem snapshots the post-gameplay value into the backup.
type SaveSystem[C component.Restorable[C]] struct {
	live   component.ComponentHandle[C]
	backup component.ComponentHandle[component.Backup[C]]
}

func NewSaveSystem[C component.Restorable[C]](live component.ComponentHandle[C], backup component.ComponentHandle[component.Backup[C]]) *SaveSystem[C] {
	return &SaveSystem[C]{live: live, backup: backup}
}

func (s *SaveSystem[C]) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, s.backup, s.live, func(_ ecs.Entity, b *component.Backup[C], v *C) {
		b.Store(*v)
	})
}
