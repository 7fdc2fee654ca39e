package component

// Facing flips the horizontal axis when Left is set.
type Facing struct {
	Left bool
}

var FacingComponent = NewComponent[Facing]()

// PixelSnap rounds the world-space translation to whole pixels.
type PixelSnap struct{}

var PixelSnapComponent = NewComponent[PixelSnap]()
