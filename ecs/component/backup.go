package component

// Restorable values can be snapshotted by a backup.
type Restorable[C any] interface {
	Clone() C
}

// Backup holds the pre-animation value of a C component. The Save phase
// fills it, the next frame's restore consumes it.
type Backup[C Restorable[C]] struct {
	Saved C
	Valid bool
}

// Store snapshots v.
func (b *Backup[C]) Store(v C) {
	b.Saved = v.Clone()
	b.Valid = true
}

// Take returns the saved value and empties the slot.
func (b *Backup[C]) Take() (C, bool) {
	if !b.Valid {
		var zero C
		return zero, false
	}
	b.Valid = false
	return b.Saved.Clone(), true
}

var (
	TransformBackupComponent = NewComponent[Backup[Transform]]()
	TintBackupComponent      = NewComponent[Backup[Tint]]()
)
